package metrics

// LOC tracks the line-count family. Own lines are attributed through the
// nodes routed to this space, so a parent never recounts lines that belong
// to a nested space; the builder supplies the span and blank-line counts for
// the region left after carving out children.
type LOC struct {
	codeLines    map[uint32]struct{}
	commentLines map[uint32]struct{}
	statements   uint32
	ownSpan      uint32
	ownBlank     uint32

	Sloc  float64 `json:"sloc" toon:"sloc"`  // physical lines in the space's range
	Ploc  float64 `json:"ploc" toon:"ploc"`  // lines holding at least one code token
	Lloc  float64 `json:"lloc" toon:"lloc"`  // logical statements
	Cloc  float64 `json:"cloc" toon:"cloc"`  // comment lines
	Blank float64 `json:"blank" toon:"blank"` // blank lines
}

// AddCode marks the lines spanned by a code token routed to this space.
func (l *LOC) AddCode(startLine, endLine uint32) {
	if l.codeLines == nil {
		l.codeLines = make(map[uint32]struct{})
	}
	for line := startLine; line <= endLine; line++ {
		l.codeLines[line] = struct{}{}
	}
}

// AddComment marks the lines spanned by a comment routed to this space.
func (l *LOC) AddComment(startLine, endLine uint32) {
	if l.commentLines == nil {
		l.commentLines = make(map[uint32]struct{})
	}
	for line := startLine; line <= endLine; line++ {
		l.commentLines[line] = struct{}{}
	}
}

// AddStatement records one logical statement.
func (l *LOC) AddStatement() { l.statements++ }

// SetRegion records the space's own physical extent: the lines of its range
// not claimed by any child space, and how many of those are blank.
func (l *LOC) SetRegion(spanLines, blankLines uint32) {
	l.ownSpan = spanLines
	l.ownBlank = blankLines
}

// Merge folds a finalized child's rolled-up counts into this space's.
func (l *LOC) Merge(child *LOC) {
	l.Sloc += child.Sloc
	l.Ploc += child.Ploc
	l.Lloc += child.Lloc
	l.Cloc += child.Cloc
	l.Blank += child.Blank
}

func (l *LOC) finalize() {
	// A line that carries both code and a trailing comment counts once,
	// as code.
	comment := 0
	for line := range l.commentLines {
		if _, isCode := l.codeLines[line]; !isCode {
			comment++
		}
	}
	l.Sloc += float64(l.ownSpan)
	l.Ploc += float64(len(l.codeLines))
	l.Lloc += float64(l.statements)
	l.Cloc += float64(comment)
	l.Blank += float64(l.ownBlank)
}
