package metrics

// Cognitive scores control flow the way a reader pays for it: each
// structural construct costs 1 plus the nesting depth it sits at, flow-break
// constructs and boolean operators cost a flat 1, and nesting resets at
// every space boundary so a deeply nested helper does not tax its parent.
type Cognitive struct {
	score      float64
	maxNesting uint32

	Value      float64 `json:"value" toon:"value"`
	Sum        float64 `json:"sum" toon:"sum"`
	Average    float64 `json:"average" toon:"average"`
	Max        float64 `json:"max" toon:"max"`
	MaxNesting uint32  `json:"max_nesting" toon:"max_nesting"`

	spaces uint32
}

// AddStructural records a branch or loop construct seen at the given nesting
// depth within this space. Depth 0 is the space's top level.
func (c *Cognitive) AddStructural(depth uint32) {
	c.score += 1 + float64(depth)
	if depth+1 > c.maxNesting {
		c.maxNesting = depth + 1
	}
}

// AddFlat records a construct that costs 1 regardless of depth: an else-if
// continuation, a flow break, or one short-circuit operator.
func (c *Cognitive) AddFlat() {
	c.score++
}

// Merge folds a finalized child into the rolled-up values.
func (c *Cognitive) Merge(child *Cognitive) {
	c.Sum += child.Sum
	c.spaces += child.spaces
	if child.Max > c.Max {
		c.Max = child.Max
	}
	if child.MaxNesting > c.MaxNesting {
		c.MaxNesting = child.MaxNesting
	}
}

func (c *Cognitive) finalize(funcLike bool) {
	c.Value = c.score
	c.Sum += c.score
	if c.maxNesting > c.MaxNesting {
		c.MaxNesting = c.maxNesting
	}
	if funcLike {
		c.spaces++
		if c.Value > c.Max {
			c.Max = c.Value
		}
	}
	if c.spaces > 0 {
		c.Average = c.Sum / float64(c.spaces)
	}
}
