// Package output renders analysis reports as text, JSON, Markdown or TOON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	toon "github.com/toon-format/toon-go"
)

// Format represents an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatTOON     Format = "toon"
)

// ParseFormat converts a string to Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "markdown", "md":
		return FormatMarkdown
	case "toon":
		return FormatTOON
	default:
		return FormatText
	}
}

// Renderable defines data that can render itself in multiple formats.
type Renderable interface {
	RenderText(w io.Writer, colored bool) error
	RenderMarkdown(w io.Writer) error
	// RenderData returns the underlying data for JSON/TOON serialization.
	RenderData() any
}

// Formatter routes report data to one writer in one format.
type Formatter struct {
	format  Format
	writer  io.Writer
	file    *os.File
	colored bool
}

// NewFormatter creates a formatter writing to stdout, or to the named file
// when output is non-empty. File output never carries color codes.
func NewFormatter(format Format, output string, colored bool) (*Formatter, error) {
	f := &Formatter{format: format, writer: os.Stdout, colored: colored}
	if output == "" {
		return f, nil
	}

	file, err := os.Create(output)
	if err != nil {
		return nil, err
	}
	f.writer = file
	f.file = file
	f.colored = false
	return f, nil
}

// Close closes the formatter's writer if it's a file.
func (f *Formatter) Close() error {
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}

// Writer returns the underlying writer.
func (f *Formatter) Writer() io.Writer { return f.writer }

// Format returns the configured format.
func (f *Formatter) Format() Format { return f.format }

// Colored returns whether colored output is enabled.
func (f *Formatter) Colored() bool { return f.colored }

// Output writes data in the configured format. Renderables pick their own
// text and markdown shapes; everything else serializes.
func (f *Formatter) Output(data any) error {
	r, renderable := data.(Renderable)

	switch f.format {
	case FormatJSON:
		if renderable {
			return f.writeJSON(r.RenderData())
		}
		return f.writeJSON(data)
	case FormatTOON:
		if renderable {
			return f.writeTOON(r.RenderData())
		}
		return f.writeTOON(data)
	case FormatMarkdown:
		if renderable {
			return r.RenderMarkdown(f.writer)
		}
		// Raw data has no markdown shape of its own; fence it as JSON.
		fmt.Fprintln(f.writer, "```json")
		if err := f.writeJSON(data); err != nil {
			return err
		}
		fmt.Fprintln(f.writer, "```")
		return nil
	default:
		if renderable {
			return r.RenderText(f.writer, f.colored)
		}
		return f.writeJSON(data)
	}
}

func (f *Formatter) writeJSON(data any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (f *Formatter) writeTOON(data any) error {
	out, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.writer, string(out))
	return err
}

// Table is a Renderable table with headers, rows, and optional footer.
type Table struct {
	Title   string     `json:"-"`
	Headers []string   `json:"-"`
	Rows    [][]string `json:"-"`
	Footer  []string   `json:"-"`
	Data    any        `json:"data,omitempty"`
}

// NewTable creates a table that wraps structured data for serialization.
func NewTable(title string, headers []string, rows [][]string, footer []string, data any) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    rows,
		Footer:  footer,
		Data:    data,
	}
}

// RenderData serializes the wrapped structured data when present, otherwise
// the rows keyed by header.
func (t *Table) RenderData() any {
	if t.Data != nil {
		return t.Data
	}
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		m := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				m[h] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}

// borderless is the shared text-table look: left-aligned cells, no borders
// or column separators.
func borderless(w io.Writer) *tablewriter.Table {
	left := tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}}
	header := left
	header.Formatting = tw.CellFormatting{AutoFormat: tw.On}

	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: header,
			Row:    left,
			Footer: left,
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.Off, Right: tw.Off, Top: tw.Off, Bottom: tw.Off},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.Off},
			},
		}),
	)
}

func writeTitle(w io.Writer, title string, colored bool, underline string) {
	if title == "" {
		return
	}
	if colored {
		color.New(color.Bold).Fprintln(w, title)
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w, strings.Repeat(underline, len(title)))
}

func (t *Table) RenderText(w io.Writer, colored bool) error {
	if t.Title != "" {
		writeTitle(w, t.Title, colored, "=")
		fmt.Fprintln(w)
	}

	table := borderless(w)
	table.Header(t.Headers)
	for _, row := range t.Rows {
		table.Append(row)
	}
	if len(t.Footer) > 0 {
		cells := make([]any, len(t.Footer))
		for i, cell := range t.Footer {
			cells[i] = cell
		}
		table.Footer(cells...)
	}
	table.Render()
	fmt.Fprintln(w)
	return nil
}

func (t *Table) RenderMarkdown(w io.Writer) error {
	if t.Title != "" {
		fmt.Fprintf(w, "## %s\n\n", t.Title)
	}

	writeRow := func(cells []string) {
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}

	writeRow(t.Headers)
	seps := make([]string, len(t.Headers))
	for i := range seps {
		seps[i] = "---"
	}
	writeRow(seps)
	for _, row := range t.Rows {
		writeRow(row)
	}
	if len(t.Footer) > 0 {
		writeRow(t.Footer)
	}
	fmt.Fprintln(w)
	return nil
}

// Section is a Renderable titled section with content and subsections.
type Section struct {
	Title    string    `json:"title,omitempty"`
	Content  string    `json:"content,omitempty"`
	Sections []Section `json:"sections,omitempty"`
	Data     any       `json:"data,omitempty"`
}

func (s *Section) RenderData() any {
	if s.Data != nil {
		return s.Data
	}
	return s
}

func (s *Section) RenderText(w io.Writer, colored bool) error {
	return s.renderText(w, colored, 0)
}

func (s *Section) renderText(w io.Writer, colored bool, level int) error {
	underline := "="
	if level > 0 {
		underline = "-"
	}
	writeTitle(w, s.Title, colored, underline)

	if s.Content != "" {
		fmt.Fprintln(w, s.Content)
	}
	for i := range s.Sections {
		fmt.Fprintln(w)
		s.Sections[i].renderText(w, colored, level+1)
	}
	return nil
}

func (s *Section) RenderMarkdown(w io.Writer) error {
	return s.renderMarkdown(w, 2)
}

func (s *Section) renderMarkdown(w io.Writer, level int) error {
	if s.Title != "" {
		fmt.Fprintf(w, "%s %s\n\n", strings.Repeat("#", level), s.Title)
	}
	if s.Content != "" {
		fmt.Fprintln(w, s.Content)
		fmt.Fprintln(w)
	}
	for i := range s.Sections {
		s.Sections[i].renderMarkdown(w, level+1)
	}
	return nil
}

// Message helpers. Colored runs go through fatih/color; plain runs carry a
// severity prefix instead.
func (f *Formatter) message(paint func(string, ...any), prefix, format string, args ...any) {
	if f.colored {
		paint(format, args...)
		return
	}
	fmt.Fprintf(f.writer, prefix+format+"\n", args...)
}

func (f *Formatter) Success(format string, args ...any) {
	f.message(color.Green, "", format, args...)
}

func (f *Formatter) Warning(format string, args ...any) {
	f.message(color.Yellow, "WARNING: ", format, args...)
}

func (f *Formatter) Error(format string, args ...any) {
	f.message(color.Red, "ERROR: ", format, args...)
}

func (f *Formatter) Info(format string, args ...any) {
	f.message(color.Cyan, "", format, args...)
}

// LevelColor colors a cell by how far a metric sits past its threshold:
// green below, yellow up to twice the threshold, red beyond.
func LevelColor(value, threshold float64, text string, colored bool) string {
	if !colored || threshold <= 0 {
		return text
	}
	switch {
	case value <= threshold:
		return color.GreenString(text)
	case value <= 2*threshold:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}
