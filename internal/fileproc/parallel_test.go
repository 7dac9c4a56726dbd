package fileproc_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratametrics/strata/internal/fileproc"
	"github.com/stratametrics/strata/pkg/analyzer"
)

func writeFiles(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	files := make([]string, 0, n)
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, "f"+string(rune('a'+i))+".go")
		src := "package p\n\nfunc f() int {\n\treturn 1\n}\n"
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
		files = append(files, path)
	}
	return files
}

func TestMapFilesAnalyzesAll(t *testing.T) {
	files := writeFiles(t, 5)

	var progressed atomic.Int64
	results, errs := fileproc.MapFiles(context.Background(), files, 3,
		func(a *analyzer.Analyzer, path string) (*analyzer.FileResult, error) {
			return a.AnalyzeFile(context.Background(), path, analyzer.Options{})
		},
		func() { progressed.Add(1) })

	require.Nil(t, errs)
	assert.Len(t, results, 5)
	assert.Equal(t, int64(5), progressed.Load())
}

func TestMapFilesCollectsErrors(t *testing.T) {
	files := append(writeFiles(t, 2), "/nonexistent/missing.go")

	results, errs := fileproc.MapFiles(context.Background(), files, 2,
		func(a *analyzer.Analyzer, path string) (*analyzer.FileResult, error) {
			return a.AnalyzeFile(context.Background(), path, analyzer.Options{})
		}, nil)

	assert.Len(t, results, 2)
	require.NotNil(t, errs)
	require.True(t, errs.HasErrors())
	assert.Len(t, errs.Errors, 1)
	assert.Equal(t, "/nonexistent/missing.go", errs.Errors[0].Path)
}

func TestMapFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, errs := fileproc.MapFiles(ctx, writeFiles(t, 4), 2,
		func(a *analyzer.Analyzer, path string) (*analyzer.FileResult, error) {
			return a.AnalyzeFile(ctx, path, analyzer.Options{})
		}, nil)

	assert.Empty(t, results)
	require.NotNil(t, errs)
	for _, pe := range errs.Errors {
		assert.True(t, errors.Is(pe.Err, context.Canceled) || pe.Err != nil)
	}
}

func TestMapFilesEmptyInput(t *testing.T) {
	results, errs := fileproc.MapFiles(context.Background(), nil, 0,
		func(a *analyzer.Analyzer, path string) (int, error) { return 0, nil }, nil)
	assert.Nil(t, results)
	assert.Nil(t, errs)
}

func TestForEachFile(t *testing.T) {
	files := writeFiles(t, 3)
	sizes, errs := fileproc.ForEachFile(context.Background(), files, 0,
		func(path string) (int64, error) {
			info, err := os.Stat(path)
			if err != nil {
				return 0, err
			}
			return info.Size(), nil
		}, nil)

	require.Nil(t, errs)
	assert.Len(t, sizes, 3)
	for _, size := range sizes {
		assert.Positive(t, size)
	}
}
