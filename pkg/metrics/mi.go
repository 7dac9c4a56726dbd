package metrics

import "math"

// MI is the maintainability index in its three common formulations, computed
// from the rolled-up SLOC, comment lines, cyclomatic sum and Halstead
// volume. The Visual Studio rescaling is clamped to [0, 100] and serves as
// the headline value.
type MI struct {
	Original     float64 `json:"mi_original" toon:"mi_original"`
	Sei          float64 `json:"mi_sei" toon:"mi_sei"`
	VisualStudio float64 `json:"mi_visual_studio" toon:"mi_visual_studio"`
}

func (m *MI) compute(sloc, cloc, cyclomatic, volume float64) {
	lnVolume := safeLn(volume)
	lnSloc := safeLn(sloc)

	m.Original = 171 - 5.2*lnVolume - 0.23*cyclomatic - 16.2*lnSloc

	perCM := 0.0
	if sloc > 0 {
		perCM = cloc / sloc
	}
	m.Sei = 171 - 5.2*safeLog2(volume) - 0.23*cyclomatic - 16.2*safeLog2(sloc) +
		50*math.Sin(math.Sqrt(2.4*perCM))

	vs := m.Original * 100 / 171
	if vs < 0 {
		vs = 0
	} else if vs > 100 {
		vs = 100
	}
	m.VisualStudio = vs
}

// safeLn returns 0 for non-positive arguments instead of -Inf/NaN.
func safeLn(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log(x)
}
