package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stratametrics/strata/pkg/metrics"
)

func TestCyclomaticBaseline(t *testing.T) {
	var m metrics.Metrics
	m.Finalize(true)

	assert.Equal(t, 1.0, m.Cyclomatic.Value)
	assert.Equal(t, 1.0, m.Cyclomatic.Sum)
	assert.Equal(t, 1.0, m.Cyclomatic.Max)
	assert.Equal(t, 1.0, m.Cyclomatic.Average)
}

func TestCyclomaticRollup(t *testing.T) {
	var a, b, parent metrics.Metrics

	a.Cyclomatic.Add()
	a.Finalize(true)
	assert.Equal(t, 2.0, a.Cyclomatic.Value)

	for i := 0; i < 3; i++ {
		b.Cyclomatic.Add()
	}
	b.Finalize(true)
	assert.Equal(t, 4.0, b.Cyclomatic.Value)

	parent.Merge(&a)
	parent.Merge(&b)
	parent.Finalize(false)

	assert.Equal(t, 1.0, parent.Cyclomatic.Value)
	assert.Equal(t, 6.0, parent.Cyclomatic.Sum)
	assert.Equal(t, 4.0, parent.Cyclomatic.Max)
	assert.Equal(t, 3.0, parent.Cyclomatic.Average)
}

func TestCognitiveNestingCost(t *testing.T) {
	var m metrics.Metrics
	m.Cognitive.AddStructural(0)
	m.Cognitive.AddStructural(1)
	m.Cognitive.AddFlat()
	m.Finalize(true)

	assert.Equal(t, 4.0, m.Cognitive.Value)
	assert.Equal(t, uint32(2), m.Cognitive.MaxNesting)
}

func TestHalsteadDistinctAcrossMerge(t *testing.T) {
	var a, b, parent metrics.Metrics

	a.Halstead.AddOperator("+")
	a.Halstead.AddOperator("+")
	a.Halstead.AddOperand("x")
	a.Finalize(true)

	b.Halstead.AddOperator("+")
	b.Halstead.AddOperator("-")
	b.Halstead.AddOperand("x")
	b.Halstead.AddOperand("y")
	b.Finalize(true)

	parent.Merge(&a)
	parent.Merge(&b)
	parent.Finalize(false)

	h := parent.Halstead
	assert.Equal(t, uint32(2), h.UniqueOperators, "distinct operators, not summed uniques")
	assert.Equal(t, uint32(2), h.UniqueOperands)
	assert.Equal(t, uint32(4), h.TotalOperators)
	assert.Equal(t, uint32(3), h.TotalOperands)
	assert.Greater(t, h.Volume, 0.0)
	assert.Greater(t, h.Effort, 0.0)
}

func TestHalsteadEmptyIsZero(t *testing.T) {
	var m metrics.Metrics
	m.Finalize(true)

	h := m.Halstead
	assert.Zero(t, h.Volume)
	assert.Zero(t, h.Difficulty)
	assert.Zero(t, h.Level)
	assert.Zero(t, h.Bugs)
	assert.False(t, h.Volume != h.Volume, "volume must not be NaN")
}

func TestLOCRegionAndOverlap(t *testing.T) {
	var m metrics.Metrics
	m.LOC.AddCode(1, 1)
	m.LOC.AddCode(2, 2)
	m.LOC.AddComment(2, 2) // trailing comment on a code line counts as code
	m.LOC.AddComment(3, 3)
	m.LOC.AddStatement()
	m.LOC.AddStatement()
	m.LOC.SetRegion(5, 1)
	m.Finalize(false)

	assert.Equal(t, 5.0, m.LOC.Sloc)
	assert.Equal(t, 2.0, m.LOC.Ploc)
	assert.Equal(t, 2.0, m.LOC.Lloc)
	assert.Equal(t, 1.0, m.LOC.Cloc)
	assert.Equal(t, 1.0, m.LOC.Blank)
}

func TestLOCRollupAdds(t *testing.T) {
	var child, parent metrics.Metrics
	child.LOC.SetRegion(4, 1)
	child.Finalize(true)

	parent.LOC.SetRegion(3, 0)
	parent.Merge(&child)
	parent.Finalize(false)

	assert.Equal(t, 7.0, parent.LOC.Sloc)
	assert.Equal(t, 1.0, parent.LOC.Blank)
}

func TestABCMagnitude(t *testing.T) {
	var m metrics.Metrics
	for i := 0; i < 3; i++ {
		m.ABC.AddAssignment()
	}
	for i := 0; i < 4; i++ {
		m.ABC.AddBranch()
	}
	m.Finalize(false)

	assert.Equal(t, 5.0, m.ABC.Magnitude)
}

func TestMIClamps(t *testing.T) {
	var empty metrics.Metrics
	empty.Finalize(false)
	assert.Equal(t, 100.0, empty.MI.VisualStudio)

	var heavy metrics.Metrics
	for i := 0; i < 2000; i++ {
		heavy.Cyclomatic.Add()
	}
	heavy.LOC.SetRegion(100000, 0)
	heavy.Finalize(true)
	assert.Equal(t, 0.0, heavy.MI.VisualStudio)
	assert.Less(t, heavy.MI.Original, 0.0)
}

func TestCountsVisibility(t *testing.T) {
	var m metrics.Metrics
	m.NPM.AddMethod(true)
	m.NPM.AddMethod(false)
	m.NPM.AddMethod(false)
	m.NPA.AddAttribute(true)
	m.NOM.AddFunction(false)
	m.NOM.AddFunction(true)
	m.Finalize(false)

	assert.Equal(t, 1.0, m.NPM.Public)
	assert.Equal(t, 2.0, m.NPM.Private)
	assert.Equal(t, 3.0, m.NPM.Total)
	assert.Equal(t, 1.0, m.NPA.Total)
	assert.Equal(t, 1.0, m.NOM.Functions)
	assert.Equal(t, 1.0, m.NOM.Closures)
	assert.Equal(t, 2.0, m.NOM.Total)
}

func TestExitsAndArgs(t *testing.T) {
	var m metrics.Metrics
	m.NArgs.SetOwn(3)
	m.Exits.Add()
	m.Exits.Add()
	m.Finalize(true)

	assert.Equal(t, 3.0, m.NArgs.Value)
	assert.Equal(t, 3.0, m.NArgs.Max)
	assert.Equal(t, 2.0, m.Exits.Value)
	assert.Equal(t, 2.0, m.Exits.Sum)
}

func TestWMCAccumulates(t *testing.T) {
	var class, nested metrics.Metrics
	nested.WMC.AddMethod(4)
	nested.Finalize(false)

	class.WMC.AddMethod(3)
	class.Merge(&nested)
	class.Finalize(false)

	assert.Equal(t, 7.0, class.WMC.Value)
}

func TestMergeOrderIndependent(t *testing.T) {
	build := func(order []int) metrics.Metrics {
		children := make([]metrics.Metrics, 3)
		for i := range children {
			for j := 0; j <= i; j++ {
				children[i].Cyclomatic.Add()
				children[i].Halstead.AddOperand("v")
			}
			children[i].Finalize(true)
		}
		var parent metrics.Metrics
		for _, idx := range order {
			parent.Merge(&children[idx])
		}
		parent.Finalize(false)
		return parent
	}

	a := build([]int{0, 1, 2})
	b := build([]int{2, 0, 1})
	assert.Equal(t, a.Cyclomatic, b.Cyclomatic)
	assert.Equal(t, a.Halstead.Volume, b.Halstead.Volume)
}
