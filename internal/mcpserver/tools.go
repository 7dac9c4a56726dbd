package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/stratametrics/strata/internal/fileproc"
	"github.com/stratametrics/strata/internal/scanner"
	"github.com/stratametrics/strata/pkg/analyzer"
	"github.com/stratametrics/strata/pkg/config"
)

// FileInput selects one on-disk file.
type FileInput struct {
	Path string `json:"path" jsonschema:"Path of the source file to analyze."`
}

// SourceInput carries an in-memory buffer.
type SourceInput struct {
	Language    string `json:"language" jsonschema:"Language of the source: go, python, rust, etc."`
	Source      string `json:"source" jsonschema:"Source code to analyze."`
	VirtualPath string `json:"virtual_path,omitempty" jsonschema:"Display path recorded on the result."`
}

// PathInput selects a directory tree.
type PathInput struct {
	Path      string   `json:"path,omitempty" jsonschema:"Directory to analyze. Defaults to the current directory."`
	Languages []string `json:"languages,omitempty" jsonschema:"Restrict analysis to these languages."`
}

// ListLanguagesInput has no parameters.
type ListLanguagesInput struct{}

func toolResult(data any) (*mcp.CallToolResult, any, error) {
	out, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(out)},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

func handleAnalyzeFile(ctx context.Context, req *mcp.CallToolRequest, input FileInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" {
		return toolError("path is required")
	}

	res, err := analyzer.New().AnalyzeFile(ctx, input.Path, analyzer.Options{})
	if err != nil {
		return toolError(err.Error())
	}
	if res == nil {
		return toolError("file is empty; nothing to analyze")
	}
	return toolResult(res)
}

func handleAnalyzeSource(ctx context.Context, req *mcp.CallToolRequest, input SourceInput) (*mcp.CallToolResult, any, error) {
	l, ok := analyzer.LanguageFromString(input.Language)
	if !ok {
		return toolError("unsupported language: " + input.Language)
	}

	res, err := analyzer.New().Analyze(ctx, l, []byte(input.Source), analyzer.Options{
		VirtualPath: input.VirtualPath,
	})
	if err != nil {
		return toolError(err.Error())
	}
	if res == nil {
		return toolError("source is empty; nothing to analyze")
	}
	return toolResult(res)
}

func handleAnalyzePath(ctx context.Context, req *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, any, error) {
	root := input.Path
	if root == "" {
		root = "."
	}

	cfg := config.DefaultConfig()
	cfg.Analysis.Languages = input.Languages
	files, err := scanner.New(cfg).ScanDir(root)
	if err != nil {
		return toolError(err.Error())
	}
	if len(files) == 0 {
		return toolError("no source files found")
	}

	results, _ := fileproc.MapFiles(ctx, files, 0,
		func(a *analyzer.Analyzer, path string) (*analyzer.FileResult, error) {
			return a.AnalyzeFile(ctx, path, analyzer.Options{})
		}, nil)

	out := struct {
		Summary analyzer.Summary       `json:"summary" toon:"summary"`
		Files   []*analyzer.FileResult `json:"files" toon:"files"`
	}{
		Summary: analyzer.Summarize(results),
		Files:   results,
	}
	return toolResult(out)
}

func handleListLanguages(ctx context.Context, req *mcp.CallToolRequest, input ListLanguagesInput) (*mcp.CallToolResult, any, error) {
	langs := analyzer.SupportedLanguages()
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = string(l)
	}
	out := struct {
		Languages []string `json:"languages" toon:"languages"`
	}{Languages: names}
	return toolResult(out)
}

