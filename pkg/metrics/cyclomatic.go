package metrics

// Cyclomatic counts decision points. A space's own value is decisions + 1
// (the single-path baseline), so a construct-free space reports exactly 1.
// The rolled-up sum adds raw decisions plus one baseline per function-like
// space, which keeps sums additive across siblings.
type Cyclomatic struct {
	decisions uint32

	Value   float64 `json:"value" toon:"value"`
	Sum     float64 `json:"sum" toon:"sum"`
	Average float64 `json:"average" toon:"average"`
	Max     float64 `json:"max" toon:"max"`

	spaces uint32
}

// Add records one decision point (branch, loop arm, or logical operator).
func (c *Cyclomatic) Add() {
	c.decisions++
}

// Merge folds a finalized child into the rolled-up values.
func (c *Cyclomatic) Merge(child *Cyclomatic) {
	c.Sum += child.Sum
	c.spaces += child.spaces
	if child.Max > c.Max {
		c.Max = child.Max
	}
}

func (c *Cyclomatic) finalize(funcLike bool) {
	c.Value = float64(c.decisions) + 1
	c.Sum += float64(c.decisions)
	if funcLike {
		c.Sum++
		c.spaces++
		if c.Value > c.Max {
			c.Max = c.Value
		}
	}
	if c.spaces > 0 {
		c.Average = c.Sum / float64(c.spaces)
	}
}
