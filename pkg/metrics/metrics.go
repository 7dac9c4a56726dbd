// Package metrics implements the per-space metric accumulators and their
// bottom-up aggregation. Each collector consumes the classified node stream
// of exactly one space; Merge folds an already-finalized child into its
// parent, and Finalize fixes the space's own contribution plus every derived
// value. Merging is associative and commutative, so child order never
// changes a result.
package metrics

// Metrics bundles every metric family for one space.
type Metrics struct {
	Cyclomatic Cyclomatic `json:"cyclomatic" toon:"cyclomatic"`
	Cognitive  Cognitive  `json:"cognitive" toon:"cognitive"`
	Halstead   Halstead   `json:"halstead" toon:"halstead"`
	ABC        ABC        `json:"abc" toon:"abc"`
	LOC        LOC        `json:"loc" toon:"loc"`
	NOM        NOM        `json:"nom" toon:"nom"`
	NPM        NPM        `json:"npm" toon:"npm"`
	NPA        NPA        `json:"npa" toon:"npa"`
	NArgs      NArgs      `json:"nargs" toon:"nargs"`
	Exits      Exits      `json:"nexits" toon:"nexits"`
	MI         MI         `json:"mi" toon:"mi"`
	WMC        WMC        `json:"wmc" toon:"wmc"`
}

// Merge folds a finalized child bundle into this one. The receiver's own
// counts are untouched; only rolled-up values accumulate.
func (m *Metrics) Merge(child *Metrics) {
	m.Cyclomatic.Merge(&child.Cyclomatic)
	m.Cognitive.Merge(&child.Cognitive)
	m.Halstead.Merge(&child.Halstead)
	m.ABC.Merge(&child.ABC)
	m.LOC.Merge(&child.LOC)
	m.NOM.Merge(&child.NOM)
	m.NPM.Merge(&child.NPM)
	m.NPA.Merge(&child.NPA)
	m.NArgs.Merge(&child.NArgs)
	m.Exits.Merge(&child.Exits)
	m.WMC.Merge(&child.WMC)
}

// Finalize folds the space's own counts into the rolled-up values and
// recomputes every derived metric from the rolled-up bases. funcLike marks
// function and closure spaces, which carry the cyclomatic baseline and count
// toward per-function averages.
func (m *Metrics) Finalize(funcLike bool) {
	m.Cyclomatic.finalize(funcLike)
	m.Cognitive.finalize(funcLike)
	m.Halstead.finalize()
	m.ABC.finalize()
	m.LOC.finalize()
	m.NArgs.finalize(funcLike)
	m.Exits.finalize(funcLike)
	m.NOM.finalize()
	m.NPM.finalize()
	m.NPA.finalize()
	m.WMC.finalize()
	m.MI.compute(m.LOC.Sloc, m.LOC.Cloc, m.Cyclomatic.Sum, m.Halstead.Volume)
}
