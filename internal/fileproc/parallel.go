// Package fileproc runs per-file analysis concurrently. Each worker owns a
// dedicated analyzer, since parsers are not safe to share across goroutines.
package fileproc

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/stratametrics/strata/pkg/analyzer"
)

// ProcessingError records one file that failed to analyze.
type ProcessingError struct {
	Path string
	Err  error
}

func (e ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// ProcessingErrors collects failures across a run without aborting it.
type ProcessingErrors struct {
	mu     sync.Mutex
	Errors []ProcessingError
}

// Add appends one failure. Safe for concurrent use.
func (e *ProcessingErrors) Add(path string, err error) {
	e.mu.Lock()
	e.Errors = append(e.Errors, ProcessingError{Path: path, Err: err})
	e.mu.Unlock()
}

// HasErrors reports whether any file failed.
func (e *ProcessingErrors) HasErrors() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.Errors) > 0
}

func (e *ProcessingErrors) Error() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("%d files failed (first: %v)", len(e.Errors), e.Errors[0])
	}
}

// DefaultWorkerMultiplier scales NumCPU into a worker count. Analysis mixes
// file I/O with CGO parsing, so 2x keeps the cores busy.
const DefaultWorkerMultiplier = 2

// ProgressFunc is called once per file, failures included.
type ProgressFunc func()

// MapFiles analyzes files concurrently with per-worker analyzers and returns
// the results in arbitrary order. Individual failures land in the returned
// error collection; cancellation stops scheduling and records ctx.Err for
// the files never reached. maxWorkers <= 0 selects the default.
func MapFiles[T any](
	ctx context.Context,
	files []string,
	maxWorkers int,
	fn func(*analyzer.Analyzer, string) (T, error),
	onProgress ProgressFunc,
) ([]T, *ProcessingErrors) {
	if len(files) == 0 {
		return nil, nil
	}
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU() * DefaultWorkerMultiplier
	}

	analyzers := make(chan *analyzer.Analyzer, maxWorkers)
	for i := 0; i < maxWorkers; i++ {
		analyzers <- analyzer.New()
	}

	results := make([]T, 0, len(files))
	errs := &ProcessingErrors{}
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(maxWorkers)
	for _, path := range files {
		p.Go(func() {
			if onProgress != nil {
				defer onProgress()
			}
			if err := ctx.Err(); err != nil {
				errs.Add(path, err)
				return
			}

			a := <-analyzers
			result, err := fn(a, path)
			analyzers <- a

			if err != nil {
				errs.Add(path, err)
				return
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		})
	}
	p.Wait()

	if !errs.HasErrors() {
		return results, nil
	}
	return results, errs
}

// ForEachFile is MapFiles without a parser, for plain per-file work.
func ForEachFile[T any](
	ctx context.Context,
	files []string,
	maxWorkers int,
	fn func(string) (T, error),
	onProgress ProgressFunc,
) ([]T, *ProcessingErrors) {
	return MapFiles(ctx, files, maxWorkers,
		func(_ *analyzer.Analyzer, path string) (T, error) { return fn(path) },
		onProgress)
}
