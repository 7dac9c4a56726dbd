package metrics

import "math"

// Halstead keeps the operator and operand multisets for one space. Distinct
// counts cannot be summed across spaces, so Merge combines the multisets and
// finalize derives the counts from the merged maps — that keeps rollups
// exact through arbitrary nesting.
type Halstead struct {
	operators map[string]uint32
	operands  map[string]uint32

	UniqueOperators uint32 `json:"n1" toon:"n1"`
	UniqueOperands  uint32 `json:"n2" toon:"n2"`
	TotalOperators  uint32 `json:"N1" toon:"N1"`
	TotalOperands   uint32 `json:"N2" toon:"N2"`

	Vocabulary      float64 `json:"vocabulary" toon:"vocabulary"`
	Length          float64 `json:"length" toon:"length"`
	EstimatedLength float64 `json:"estimated_length" toon:"estimated_length"`
	Volume          float64 `json:"volume" toon:"volume"`
	Difficulty      float64 `json:"difficulty" toon:"difficulty"`
	Level           float64 `json:"level" toon:"level"`
	Effort          float64 `json:"effort" toon:"effort"`
	Time            float64 `json:"time" toon:"time"`
	Bugs            float64 `json:"bugs" toon:"bugs"`
}

// AddOperator records one occurrence of an operator token.
func (h *Halstead) AddOperator(text string) {
	if h.operators == nil {
		h.operators = make(map[string]uint32)
	}
	h.operators[text]++
}

// AddOperand records one occurrence of an operand token.
func (h *Halstead) AddOperand(text string) {
	if h.operands == nil {
		h.operands = make(map[string]uint32)
	}
	h.operands[text]++
}

// Merge combines a child's multisets into this space's.
func (h *Halstead) Merge(child *Halstead) {
	for tok, n := range child.operators {
		if h.operators == nil {
			h.operators = make(map[string]uint32, len(child.operators))
		}
		h.operators[tok] += n
	}
	for tok, n := range child.operands {
		if h.operands == nil {
			h.operands = make(map[string]uint32, len(child.operands))
		}
		h.operands[tok] += n
	}
}

func (h *Halstead) finalize() {
	h.UniqueOperators = uint32(len(h.operators))
	h.UniqueOperands = uint32(len(h.operands))
	h.TotalOperators = 0
	h.TotalOperands = 0
	for _, n := range h.operators {
		h.TotalOperators += n
	}
	for _, n := range h.operands {
		h.TotalOperands += n
	}

	u1 := float64(h.UniqueOperators)
	u2 := float64(h.UniqueOperands)
	n1 := float64(h.TotalOperators)
	n2 := float64(h.TotalOperands)

	h.Vocabulary = u1 + u2
	h.Length = n1 + n2
	h.EstimatedLength = u1*safeLog2(u1) + u2*safeLog2(u2)
	h.Volume = h.Length * safeLog2(h.Vocabulary)
	if u2 > 0 {
		h.Difficulty = (u1 / 2) * (n2 / u2)
	} else {
		h.Difficulty = 0
	}
	if h.Difficulty > 0 {
		h.Level = 1 / h.Difficulty
	} else {
		h.Level = 0
	}
	h.Effort = h.Difficulty * h.Volume
	h.Time = h.Effort / 18
	h.Bugs = safePow(h.Effort, 2.0/3.0) / 3000
}

// safeLog2 returns 0 for non-positive arguments instead of -Inf/NaN.
func safeLog2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}

// safePow returns 0 for a non-positive base instead of a NaN surprise.
func safePow(x, y float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, y)
}
