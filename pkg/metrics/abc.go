package metrics

import "math"

// ABC tallies assignments, branches (call sites) and conditions, with the
// conventional Euclidean magnitude.
type ABC struct {
	Assignments float64 `json:"assignments" toon:"assignments"`
	Branches    float64 `json:"branches" toon:"branches"`
	Conditions  float64 `json:"conditions" toon:"conditions"`
	Magnitude   float64 `json:"magnitude" toon:"magnitude"`
}

// AddAssignment records one assignment.
func (a *ABC) AddAssignment() { a.Assignments++ }

// AddBranch records one call site.
func (a *ABC) AddBranch() { a.Branches++ }

// AddCondition records one condition.
func (a *ABC) AddCondition() { a.Conditions++ }

// Merge folds a finalized child's counts into this space's.
func (a *ABC) Merge(child *ABC) {
	a.Assignments += child.Assignments
	a.Branches += child.Branches
	a.Conditions += child.Conditions
}

func (a *ABC) finalize() {
	a.Magnitude = math.Sqrt(a.Assignments*a.Assignments +
		a.Branches*a.Branches +
		a.Conditions*a.Conditions)
}
