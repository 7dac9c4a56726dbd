// Package analyzer is the front door of the metrics engine: it parses a
// source buffer with the grammar for its language, builds the space
// hierarchy and returns the finalized metric tree for the file.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/stratametrics/strata/pkg/lang"
	"github.com/stratametrics/strata/pkg/node"
	"github.com/stratametrics/strata/pkg/spaces"
)

// ErrUnsupported mirrors lang.ErrUnsupported for callers that only import
// this package.
var ErrUnsupported = lang.ErrUnsupported

// ErrAnalysis wraps parser failures: the grammar could not produce a tree
// for the buffer at all. Partial trees with error nodes do not trigger it.
var ErrAnalysis = errors.New("analysis failed")

// Options tunes a single analysis call. The zero value is ready to use.
type Options struct {
	// VirtualPath overrides the display path recorded on the result, for
	// buffers that do not live on disk (stdin, editors, generated code).
	VirtualPath string

	// Preproc carries macro definitions gathered from other translation
	// units. C and C++ only; ignored elsewhere.
	Preproc *Preproc
}

// FileResult is the outcome of analyzing one source buffer. Language is the
// plain language name so the result serializes as-is in every output format.
type FileResult struct {
	Path     string        `json:"path" toon:"path"`
	Language string        `json:"language" toon:"language"`
	Root     *spaces.Space `json:"root" toon:"root"`
	Preproc  *Preproc      `json:"preproc,omitempty" toon:"preproc,omitempty"`
}

// Analyzer parses buffers and produces metric trees. It reuses one parser
// across calls, so a single Analyzer must not be shared between goroutines;
// give each worker its own.
type Analyzer struct {
	parser *sitter.Parser
}

// New returns a ready Analyzer.
func New() *Analyzer {
	return &Analyzer{parser: sitter.NewParser()}
}

// Analyze parses source as the given language and returns its metric tree.
// An empty buffer has no spaces to measure and yields (nil, nil); callers
// distinguish that absent result from a present file whose unit space simply
// reports zeroes.
func (a *Analyzer) Analyze(ctx context.Context, l lang.Language, source []byte, opts Options) (*FileResult, error) {
	if len(source) == 0 {
		return nil, nil
	}

	grammar, err := lang.Grammar(l)
	if err != nil {
		return nil, err
	}
	table, err := lang.TableFor(l)
	if err != nil {
		return nil, err
	}

	a.parser.SetLanguage(grammar)
	tree, err := a.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	defer tree.Close()

	root := node.Wrap(tree.RootNode())
	if !root.Valid() {
		return nil, fmt.Errorf("%w: no parse tree", ErrAnalysis)
	}

	path := opts.VirtualPath
	if path == "" {
		path = "<buffer>"
	}

	res := &FileResult{
		Path:     path,
		Language: string(l),
		Root:     spaces.Build(root, source, table, path),
	}
	if l == lang.C || l == lang.CPP {
		res.Preproc = extractPreproc(root, source, opts.Preproc)
	}
	return res, nil
}

// AnalyzeFile reads path, detects its language from the extension and
// analyzes it. Options.VirtualPath still wins for the recorded path.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	l := lang.Detect(path)
	if l == lang.Unknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if opts.VirtualPath == "" {
		opts.VirtualPath = path
	}
	return a.Analyze(ctx, l, source, opts)
}

// SupportedLanguages returns every language the engine can analyze.
func SupportedLanguages() []lang.Language {
	return lang.All()
}

// LanguageFromString resolves a language name or alias.
func LanguageFromString(s string) (lang.Language, bool) {
	return lang.FromString(s)
}

// DetectLanguage resolves a language from a file path.
func DetectLanguage(path string) lang.Language {
	return lang.Detect(path)
}
