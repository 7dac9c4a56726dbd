package analyzer

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/stratametrics/strata/pkg/spaces"
)

// Summary aggregates the headline numbers across a set of analyzed files.
type Summary struct {
	Files     int `json:"files" toon:"files"`
	Spaces    int `json:"spaces" toon:"spaces"`
	Functions int `json:"functions" toon:"functions"`

	Sloc  float64 `json:"sloc" toon:"sloc"`
	Cloc  float64 `json:"cloc" toon:"cloc"`
	Blank float64 `json:"blank" toon:"blank"`

	MeanComplexity   float64 `json:"mean_complexity" toon:"mean_complexity"`
	MedianComplexity float64 `json:"median_complexity" toon:"median_complexity"`
	P95Complexity    float64 `json:"p95_complexity" toon:"p95_complexity"`
	MaxComplexity    float64 `json:"max_complexity" toon:"max_complexity"`

	MeanCognitive float64 `json:"mean_cognitive" toon:"mean_cognitive"`
	MeanMI        float64 `json:"mean_mi" toon:"mean_mi"`
}

// Summarize folds a set of file results into one project summary. Absent
// results (nil entries, as produced for empty files) are skipped. Complexity
// statistics are taken per function-like space, not per file, so one huge
// file cannot hide behind many small ones.
func Summarize(results []*FileResult) Summary {
	var s Summary
	var complexity, cognitive, mi []float64

	for _, res := range results {
		if res == nil || res.Root == nil {
			continue
		}
		s.Files++
		s.Sloc += res.Root.Metrics.LOC.Sloc
		s.Cloc += res.Root.Metrics.LOC.Cloc
		s.Blank += res.Root.Metrics.LOC.Blank

		res.Root.Walk(func(sp *spaces.Space) bool {
			s.Spaces++
			if sp.Kind.FuncLike() {
				s.Functions++
				complexity = append(complexity, sp.Metrics.Cyclomatic.Value)
				cognitive = append(cognitive, sp.Metrics.Cognitive.Value)
			}
			return true
		})
		mi = append(mi, res.Root.Metrics.MI.VisualStudio)
	}

	if len(complexity) > 0 {
		sort.Float64s(complexity)
		s.MeanComplexity = stat.Mean(complexity, nil)
		s.MedianComplexity = stat.Quantile(0.5, stat.Empirical, complexity, nil)
		s.P95Complexity = stat.Quantile(0.95, stat.Empirical, complexity, nil)
		s.MaxComplexity = complexity[len(complexity)-1]
		s.MeanCognitive = stat.Mean(cognitive, nil)
	}
	if len(mi) > 0 {
		s.MeanMI = stat.Mean(mi, nil)
	}
	return s
}
