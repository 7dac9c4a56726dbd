// Package spaces builds the hierarchy of code spaces for a parsed source
// file. A space is any syntactic region that owns metrics: the file itself,
// a class-like declaration, a named function or an anonymous closure. Spaces
// nest without overlapping, and every metric rolls up from the leaves to the
// unit space at the root.
package spaces

import (
	"github.com/stratametrics/strata/pkg/metrics"
)

// Kind labels the flavor of a space.
type Kind string

const (
	KindUnit     Kind = "unit"
	KindClass    Kind = "class"
	KindFunction Kind = "function"
	KindClosure  Kind = "closure"
)

// FuncLike reports whether the kind carries the per-function cyclomatic
// baseline and counts toward per-function averages.
func (k Kind) FuncLike() bool {
	return k == KindFunction || k == KindClosure
}

func (k Kind) String() string { return string(k) }

// Space is one node of the space hierarchy. Children appear in source
// order, their line ranges nested strictly inside the parent's. Metrics
// hold the space's finalized values, with every child already merged in.
type Space struct {
	Name      string          `json:"name" toon:"name"`
	Kind      Kind            `json:"kind" toon:"kind"`
	StartLine uint32          `json:"start_line" toon:"start_line"`
	EndLine   uint32          `json:"end_line" toon:"end_line"`
	Spaces    []*Space        `json:"spaces" toon:"spaces"`
	Metrics   metrics.Metrics `json:"metrics" toon:"metrics"`
}

// Walk visits the space and every descendant depth-first in source order.
// Returning false from the visitor stops the walk.
func (s *Space) Walk(visit func(*Space) bool) bool {
	if !visit(s) {
		return false
	}
	for _, child := range s.Spaces {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// CountSpaces returns the total number of spaces in the subtree, the
// receiver included.
func (s *Space) CountSpaces() int {
	n := 0
	s.Walk(func(*Space) bool {
		n++
		return true
	})
	return n
}
