package analyzer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratametrics/strata/pkg/analyzer"
	"github.com/stratametrics/strata/pkg/lang"
	"github.com/stratametrics/strata/pkg/spaces"
)

const goSample = `package demo

func double(x int) int {
	if x > 0 {
		return x * 2
	}
	return 0
}
`

func TestAnalyzeEmptySourceIsAbsent(t *testing.T) {
	res, err := analyzer.New().Analyze(context.Background(), lang.Go, nil, analyzer.Options{})
	require.NoError(t, err)
	assert.Nil(t, res, "nothing to measure is not the same as measuring zero")
}

func TestAnalyzeUnsupportedLanguage(t *testing.T) {
	_, err := analyzer.New().Analyze(context.Background(), lang.Unknown, []byte("x"), analyzer.Options{})
	require.ErrorIs(t, err, analyzer.ErrUnsupported)
}

func TestAnalyzeVirtualPath(t *testing.T) {
	res, err := analyzer.New().Analyze(context.Background(), lang.Go, []byte(goSample),
		analyzer.Options{VirtualPath: "lib/demo.go"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "lib/demo.go", res.Path)
	assert.Equal(t, "lib/demo.go", res.Root.Name)
}

func TestAnalyzeBuildsTree(t *testing.T) {
	res, err := analyzer.New().Analyze(context.Background(), lang.Go, []byte(goSample), analyzer.Options{})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Root.Spaces, 1)

	double := res.Root.Spaces[0]
	assert.Equal(t, "double", double.Name)
	assert.Equal(t, spaces.KindFunction, double.Kind)
	assert.Equal(t, 2.0, double.Metrics.Cyclomatic.Value)
	assert.Nil(t, res.Preproc, "preprocessor info is C/C++ only")
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.go")
	require.NoError(t, os.WriteFile(path, []byte(goSample), 0o644))

	res, err := analyzer.New().AnalyzeFile(context.Background(), path, analyzer.Options{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "go", res.Language)
	assert.Equal(t, path, res.Path)
}

func TestAnalyzeFileUnknownExtension(t *testing.T) {
	_, err := analyzer.New().AnalyzeFile(context.Background(), "README.txt", analyzer.Options{})
	require.ErrorIs(t, err, analyzer.ErrUnsupported)
}

func TestAnalyzeCPreproc(t *testing.T) {
	src := []byte(`#include <stdio.h>
#include "util.h"
#define LIMIT 10
#define MAX(a, b) ((a) > (b) ? (a) : (b))

int main(void) {
	return 0;
}
`)
	res, err := analyzer.New().Analyze(context.Background(), lang.C, src, analyzer.Options{})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotNil(t, res.Preproc)

	assert.Contains(t, res.Preproc.Includes, "stdio.h")
	assert.Contains(t, res.Preproc.Includes, "util.h")
	assert.Contains(t, res.Preproc.Macros, "LIMIT")
	assert.Contains(t, res.Preproc.Macros, "MAX")
}

func TestAnalyzeCPreprocSeedMacros(t *testing.T) {
	res, err := analyzer.New().Analyze(context.Background(), lang.C, []byte("int x;\n"),
		analyzer.Options{Preproc: &analyzer.Preproc{Macros: []string{"EXTERNAL"}}})
	require.NoError(t, err)
	require.NotNil(t, res.Preproc)
	assert.Contains(t, res.Preproc.Macros, "EXTERNAL")
}

func TestSummarize(t *testing.T) {
	a := analyzer.New()
	ctx := context.Background()

	first, err := a.Analyze(ctx, lang.Go, []byte(goSample), analyzer.Options{})
	require.NoError(t, err)
	second, err := a.Analyze(ctx, lang.Python, []byte("def f():\n    return 1\n"), analyzer.Options{})
	require.NoError(t, err)

	s := analyzer.Summarize([]*analyzer.FileResult{first, second, nil})
	assert.Equal(t, 2, s.Files, "absent results are skipped")
	assert.Equal(t, 2, s.Functions)
	assert.Equal(t, 2.0, s.MaxComplexity)
	assert.Equal(t, 1.5, s.MeanComplexity)
	assert.Positive(t, s.Sloc)
}
