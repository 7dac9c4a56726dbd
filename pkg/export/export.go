// Package export provides a read-only view of analysis results for
// downstream consumers such as scoring pipelines or database loaders.
// Consumers implement Visitor against these types; nothing in the engine
// imports or calls back into enrichment code.
package export

import (
	"time"

	"github.com/stratametrics/strata/pkg/analyzer"
	"github.com/stratametrics/strata/pkg/metrics"
	"github.com/stratametrics/strata/pkg/spaces"
)

// SpaceView is one space flattened out of the tree. Metrics are copied by
// value, so a consumer cannot mutate the analyzed result.
type SpaceView struct {
	Name      string          `json:"name"`
	Qualified string          `json:"qualified"`
	Kind      spaces.Kind     `json:"kind"`
	Depth     int             `json:"depth"`
	StartLine uint32          `json:"start_line"`
	EndLine   uint32          `json:"end_line"`
	Metrics   metrics.Metrics `json:"metrics"`
}

// Snapshot is a file's analysis frozen for export: the spaces in pre-order,
// each tagged with its dotted qualified name.
type Snapshot struct {
	Path        string      `json:"path"`
	Language    string      `json:"language"`
	GeneratedAt time.Time   `json:"generated_at"`
	Spaces      []SpaceView `json:"spaces"`
}

// FromResult flattens one analysis result. A nil result yields nil.
func FromResult(res *analyzer.FileResult) *Snapshot {
	if res == nil || res.Root == nil {
		return nil
	}

	snap := &Snapshot{
		Path:        res.Path,
		Language:    res.Language,
		GeneratedAt: time.Now().UTC(),
	}
	flatten(res.Root, "", 0, &snap.Spaces)
	return snap
}

func flatten(s *spaces.Space, parentQualified string, depth int, out *[]SpaceView) {
	qualified := s.Name
	if parentQualified != "" {
		qualified = parentQualified + "." + s.Name
	}
	*out = append(*out, SpaceView{
		Name:      s.Name,
		Qualified: qualified,
		Kind:      s.Kind,
		Depth:     depth,
		StartLine: s.StartLine,
		EndLine:   s.EndLine,
		Metrics:   s.Metrics,
	})
	for _, child := range s.Spaces {
		flatten(child, qualified, depth+1, out)
	}
}

// Visitor consumes spaces one at a time. Returning an error stops the walk.
type Visitor interface {
	Visit(v SpaceView) error
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(v SpaceView) error

// Visit calls f(v).
func (f VisitorFunc) Visit(v SpaceView) error { return f(v) }

// Walk feeds every space of the snapshot to the visitor in pre-order.
func (s *Snapshot) Walk(visitor Visitor) error {
	for _, view := range s.Spaces {
		if err := visitor.Visit(view); err != nil {
			return err
		}
	}
	return nil
}

// Functions returns only the function-like spaces of the snapshot.
func (s *Snapshot) Functions() []SpaceView {
	var out []SpaceView
	for _, view := range s.Spaces {
		if view.Kind.FuncLike() {
			out = append(out, view)
		}
	}
	return out
}
