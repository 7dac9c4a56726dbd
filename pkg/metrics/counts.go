package metrics

// NOM counts the functions and closures declared beneath a space.
type NOM struct {
	Functions float64 `json:"functions" toon:"functions"`
	Closures  float64 `json:"closures" toon:"closures"`
	Total     float64 `json:"total" toon:"total"`
}

// AddFunction records one closed function or closure child.
func (n *NOM) AddFunction(closure bool) {
	if closure {
		n.Closures++
	} else {
		n.Functions++
	}
}

// Merge folds a finalized child's counts into this space's.
func (n *NOM) Merge(child *NOM) {
	n.Functions += child.Functions
	n.Closures += child.Closures
}

func (n *NOM) finalize() {
	n.Total = n.Functions + n.Closures
}

// NPM partitions method counts by visibility. Languages without a
// visibility concept report everything public.
type NPM struct {
	Public  float64 `json:"public" toon:"public"`
	Private float64 `json:"private" toon:"private"`
	Total   float64 `json:"total" toon:"total"`
}

// AddMethod records one method with the given public flag.
func (n *NPM) AddMethod(public bool) {
	if public {
		n.Public++
	} else {
		n.Private++
	}
}

// Merge folds a finalized child's counts into this space's.
func (n *NPM) Merge(child *NPM) {
	n.Public += child.Public
	n.Private += child.Private
}

func (n *NPM) finalize() {
	n.Total = n.Public + n.Private
}

// NPA partitions attribute counts by visibility.
type NPA struct {
	Public  float64 `json:"public" toon:"public"`
	Private float64 `json:"private" toon:"private"`
	Total   float64 `json:"total" toon:"total"`
}

// AddAttribute records one attribute with the given public flag.
func (n *NPA) AddAttribute(public bool) {
	if public {
		n.Public++
	} else {
		n.Private++
	}
}

// Merge folds a finalized child's counts into this space's.
func (n *NPA) Merge(child *NPA) {
	n.Public += child.Public
	n.Private += child.Private
}

func (n *NPA) finalize() {
	n.Total = n.Public + n.Private
}

// NArgs tracks argument counts: a space's own declared parameters plus the
// sum/max across every function beneath it.
type NArgs struct {
	args uint32

	Value   float64 `json:"value" toon:"value"`
	Sum     float64 `json:"sum" toon:"sum"`
	Average float64 `json:"average" toon:"average"`
	Max     float64 `json:"max" toon:"max"`

	spaces uint32
}

// SetOwn records the parameter count declared by this space itself.
func (n *NArgs) SetOwn(count uint32) {
	n.args = count
}

// Merge folds a finalized child into the rolled-up values.
func (n *NArgs) Merge(child *NArgs) {
	n.Sum += child.Sum
	n.spaces += child.spaces
	if child.Max > n.Max {
		n.Max = child.Max
	}
}

func (n *NArgs) finalize(funcLike bool) {
	n.Value = float64(n.args)
	if funcLike {
		n.Sum += n.Value
		n.spaces++
		if n.Value > n.Max {
			n.Max = n.Value
		}
	}
	if n.spaces > 0 {
		n.Average = n.Sum / float64(n.spaces)
	}
}

// Exits counts distinct exit points (returns, throws, raises).
type Exits struct {
	exits uint32

	Value   float64 `json:"value" toon:"value"`
	Sum     float64 `json:"sum" toon:"sum"`
	Average float64 `json:"average" toon:"average"`
	Max     float64 `json:"max" toon:"max"`

	spaces uint32
}

// Add records one exit point in this space.
func (e *Exits) Add() { e.exits++ }

// Merge folds a finalized child into the rolled-up values.
func (e *Exits) Merge(child *Exits) {
	e.Sum += child.Sum
	e.spaces += child.spaces
	if child.Max > e.Max {
		e.Max = child.Max
	}
}

func (e *Exits) finalize(funcLike bool) {
	e.Value = float64(e.exits)
	e.Sum += e.Value
	if funcLike {
		e.spaces++
		if e.Value > e.Max {
			e.Max = e.Value
		}
	}
	if e.spaces > 0 {
		e.Average = e.Sum / float64(e.spaces)
	}
}

// WMC is the weighted-methods-per-class sum: each method contributes its
// cyclomatic complexity to its enclosing class.
type WMC struct {
	Value float64 `json:"value" toon:"value"`
}

// AddMethod folds one method's cyclomatic value into the class weight.
func (w *WMC) AddMethod(cyclomatic float64) {
	w.Value += cyclomatic
}

// Merge folds a nested class's weight into this space's.
func (w *WMC) Merge(child *WMC) {
	w.Value += child.Value
}

func (w *WMC) finalize() {}
