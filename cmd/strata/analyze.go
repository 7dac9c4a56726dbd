package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/stratametrics/strata/internal/cache"
	"github.com/stratametrics/strata/internal/fileproc"
	"github.com/stratametrics/strata/internal/output"
	"github.com/stratametrics/strata/internal/progress"
	"github.com/stratametrics/strata/internal/scanner"
	"github.com/stratametrics/strata/pkg/analyzer"
	"github.com/stratametrics/strata/pkg/config"
	"github.com/stratametrics/strata/pkg/spaces"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"an"},
		Usage:     "Measure complexity, size, and maintainability metrics",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "functions",
				Usage: "Report per-function rows instead of per-file",
			},
			&cli.Float64Flag{
				Name:  "cyclomatic-threshold",
				Usage: "Override the cyclomatic complexity warning threshold",
			},
			&cli.Float64Flag{
				Name:  "cognitive-threshold",
				Usage: "Override the cognitive complexity warning threshold",
			},
		},
		Action: runAnalyzeCmd,
	}
}

// report is the structured payload for json and toon output.
type report struct {
	Summary analyzer.Summary       `json:"summary" toon:"summary"`
	Files   []*analyzer.FileResult `json:"files" toon:"files"`
}

func runAnalyzeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("cyclomatic-threshold") {
		cfg.Thresholds.CyclomaticComplexity = c.Float64("cyclomatic-threshold")
	}
	if c.IsSet("cognitive-threshold") {
		cfg.Thresholds.CognitiveComplexity = c.Float64("cognitive-threshold")
	}

	files, err := collectFiles(c, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	files, skipped := scanner.FilterBySize(files, cfg.Analysis.MaxFileSize)
	if skipped > 0 && c.Bool("verbose") {
		color.Yellow("Skipped %d files over the size limit", skipped)
	}

	results, procErrs := analyzeFiles(c, cfg, files)
	if procErrs != nil && procErrs.HasErrors() {
		if c.Bool("verbose") {
			for _, pe := range procErrs.Errors {
				color.Yellow("  %v", pe)
			}
		} else {
			color.Yellow("%d files failed to analyze (use --verbose for details)", len(procErrs.Errors))
		}
	}

	kept := results[:0]
	for _, res := range results {
		if res != nil {
			kept = append(kept, res)
		}
	}
	results = kept
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	summary := analyzer.Summarize(results)

	if formatter.Format() == output.FormatJSON || formatter.Format() == output.FormatTOON {
		return formatter.Output(report{Summary: summary, Files: results})
	}

	var table *output.Table
	if c.Bool("functions") {
		table = functionTable(results, cfg, formatter.Colored())
	} else {
		table = fileTable(results, summary, cfg, formatter.Colored())
	}
	return formatter.Output(table)
}

// analyzeFiles runs the worker pool over files, serving unchanged files from
// the cache and writing fresh results back.
func analyzeFiles(c *cli.Context, cfg *config.Config, files []string) ([]*analyzer.FileResult, *fileproc.ProcessingErrors) {
	enabled := cfg.Cache.Enabled && !c.Bool("no-cache")
	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, enabled)
	if err != nil {
		if c.Bool("verbose") {
			color.Yellow("Cache unavailable: %v", err)
		}
		store, _ = cache.New("", 0, false)
	}

	tracker := progress.NewTracker("Analyzing...", len(files))
	results, errs := fileproc.MapFiles(c.Context, files, cfg.Analysis.Workers,
		func(a *analyzer.Analyzer, path string) (*analyzer.FileResult, error) {
			hash, err := cache.HashFile(path)
			if err != nil {
				return nil, err
			}
			if res, ok := store.GetResult(path, hash); ok {
				return res, nil
			}

			res, err := a.AnalyzeFile(c.Context, path, analyzer.Options{})
			if err != nil {
				if errors.Is(err, analyzer.ErrUnsupported) {
					return nil, nil
				}
				return nil, err
			}
			if res != nil {
				_ = store.SetResult(path, hash, res)
			}
			return res, nil
		}, tracker.Tick)
	tracker.FinishSuccess()
	return results, errs
}

func fileTable(results []*analyzer.FileResult, summary analyzer.Summary, cfg *config.Config, colored bool) *output.Table {
	var rows [][]string
	for _, res := range results {
		m := &res.Root.Metrics
		rows = append(rows, []string{
			relPath(res.Path),
			res.Language,
			fmt.Sprintf("%.0f", m.NOM.Total),
			fmt.Sprintf("%.0f", m.LOC.Sloc),
			output.LevelColor(m.Cyclomatic.Average, cfg.Thresholds.CyclomaticComplexity,
				fmt.Sprintf("%.1f", m.Cyclomatic.Average), colored),
			output.LevelColor(m.Cognitive.Average, cfg.Thresholds.CognitiveComplexity,
				fmt.Sprintf("%.1f", m.Cognitive.Average), colored),
			miColor(m.MI.VisualStudio, cfg.Thresholds.MaintainabilityLow, colored),
		})
	}

	return output.NewTable(
		"Code Metrics",
		[]string{"File", "Lang", "Funcs", "Sloc", "Avg Cyc", "Avg Cog", "MI"},
		rows,
		[]string{
			fmt.Sprintf("Files: %d", summary.Files),
			fmt.Sprintf("Functions: %d", summary.Functions),
			fmt.Sprintf("Sloc: %.0f", summary.Sloc),
			"",
			fmt.Sprintf("Mean: %.1f", summary.MeanComplexity),
			fmt.Sprintf("P95: %.1f", summary.P95Complexity),
			fmt.Sprintf("Mean: %.1f", summary.MeanMI),
		},
		summary,
	)
}

func functionTable(results []*analyzer.FileResult, cfg *config.Config, colored bool) *output.Table {
	var rows [][]string
	var functions int
	for _, res := range results {
		path := relPath(res.Path)
		res.Root.Walk(func(s *spaces.Space) bool {
			if !s.Kind.FuncLike() {
				return true
			}
			functions++
			m := &s.Metrics
			rows = append(rows, []string{
				path,
				truncate(s.Name, 40),
				fmt.Sprintf("%d", s.StartLine),
				output.LevelColor(m.Cyclomatic.Value, cfg.Thresholds.CyclomaticComplexity,
					fmt.Sprintf("%.0f", m.Cyclomatic.Value), colored),
				output.LevelColor(m.Cognitive.Value, cfg.Thresholds.CognitiveComplexity,
					fmt.Sprintf("%.0f", m.Cognitive.Value), colored),
				fmt.Sprintf("%d", m.Cognitive.MaxNesting),
				fmt.Sprintf("%.0f", m.NArgs.Value),
				fmt.Sprintf("%.0f", m.Exits.Value),
			})
			return true
		})
	}

	return output.NewTable(
		"Function Metrics",
		[]string{"File", "Function", "Line", "Cyc", "Cog", "Nesting", "Args", "Exits"},
		rows,
		[]string{fmt.Sprintf("Functions: %d", functions)},
		nil,
	)
}

// miColor colors a maintainability index, where low values are the bad ones.
func miColor(value, low float64, colored bool) string {
	text := fmt.Sprintf("%.1f", value)
	if !colored {
		return text
	}
	switch {
	case value < low:
		return color.RedString(text)
	case value < 2*low:
		return color.YellowString(text)
	default:
		return color.GreenString(text)
	}
}

func relPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(cwd, path); err == nil && !filepath.IsAbs(rel) {
		return rel
	}
	return path
}
