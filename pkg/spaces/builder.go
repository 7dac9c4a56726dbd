package spaces

import (
	"github.com/stratametrics/strata/pkg/lang"
	"github.com/stratametrics/strata/pkg/metrics"
	"github.com/stratametrics/strata/pkg/node"
)

// anonymousName labels spaces whose declaration carries no identifier.
const anonymousName = "<anonymous>"

// Build walks the parse tree rooted at root and returns the unit space for
// the whole file, with every nested space closed, finalized and merged into
// its parent. unitName is the display name of the root space, normally the
// file path. Error and missing nodes contribute nothing but their subtrees
// are still visited, so one malformed region never hides the rest of the
// file.
func Build(root node.Node, source []byte, table *lang.Table, unitName string) *Space {
	b := &builder{
		table:  table,
		source: source,
		blank:  blankLines(source),
	}

	unit := &Space{
		Name:      unitName,
		Kind:      KindUnit,
		StartLine: root.StartLine(),
		EndLine:   root.EndLine(),
	}
	if !root.Valid() {
		unit.StartLine = 1
		unit.EndLine = 1
	}
	b.stack = []*frame{{space: unit}}

	for i := 0; i < root.ChildCount(); i++ {
		b.walk(root.Child(i), 0)
	}

	top := b.stack[0]
	top.space.Metrics.LOC.SetRegion(b.ownRegion(top))
	top.space.Metrics.Finalize(false)
	return unit
}

type span struct {
	start, end uint32
}

// frame tracks one open space during the walk.
type frame struct {
	space      *Space
	closure    bool
	public     bool
	childSpans []span
}

type builder struct {
	table  *lang.Table
	source []byte
	blank  []bool // 1-based, true where the line holds only whitespace
	stack  []*frame
}

func (b *builder) top() *frame {
	return b.stack[len(b.stack)-1]
}

// walk classifies n against the language table, routes its counts to the
// innermost open space, and recurses. depth is the cognitive nesting level
// of n within the current space; it resets to zero inside a new space.
func (b *builder) walk(n node.Node, depth uint32) {
	if !n.Valid() {
		return
	}
	if n.IsError() || n.IsMissing() {
		// Malformed regions classify as unknown. Recurse so any intact
		// subtree inside still counts.
		for i := 0; i < n.ChildCount(); i++ {
			b.walk(n.Child(i), depth)
		}
		return
	}

	t := b.table
	kind := n.Kind()

	// Keyword tokens share kind strings with the constructs they introduce
	// (a JS `function` token vs. a function declaration, a Ruby `if` token
	// vs. an if node). Only named nodes carry construct semantics; anonymous
	// tokens contribute as operators and physical lines in visitLeaf.
	if !n.IsNamed() {
		if n.IsLeaf() {
			b.visitLeaf(n, kind, &b.top().space.Metrics)
			return
		}
		for i := 0; i < n.ChildCount(); i++ {
			b.walk(n.Child(i), depth)
		}
		return
	}

	if t.OpensFunc(kind) || t.OpensClosure(kind) || t.OpensClass(kind) {
		b.openSpace(n, kind)
		for i := 0; i < n.ChildCount(); i++ {
			b.walk(n.Child(i), 0)
		}
		b.closeSpace()
		return
	}

	m := &b.top().space.Metrics

	if t.Comment[kind] {
		m.LOC.AddComment(n.StartLine(), n.EndLine())
		return
	}

	if t.Statement[kind] {
		m.LOC.AddStatement()
	}
	if t.Exit[kind] {
		m.Exits.Add()
	}
	if t.Assignment[kind] {
		m.ABC.AddAssignment()
	}
	if t.Call[kind] {
		m.ABC.AddBranch()
	}
	if t.Condition[kind] {
		m.ABC.AddCondition()
	}
	if t.Decision[kind] {
		m.Cyclomatic.Add()
	}
	if t.Field[kind] && b.top().space.Kind == KindClass {
		b.addAttribute(n)
	}

	childDepth := depth
	if t.Nesting[kind] {
		if b.isElseBranch(n) {
			// An else-if chain reads linearly, so the chained branch
			// costs one without deepening the nest.
			m.Cognitive.AddFlat()
			childDepth = depth
		} else {
			m.Cognitive.AddStructural(depth)
			childDepth = depth + 1
		}
	} else if t.Flat[kind] {
		m.Cognitive.AddFlat()
	}

	if t.Operand[kind] {
		// Composite literals (interpolated strings) count as a single
		// operand; their internals are not traversed.
		m.Halstead.AddOperand(n.Text(b.source))
		m.LOC.AddCode(n.StartLine(), n.EndLine())
		return
	}

	if n.IsLeaf() {
		b.visitLeaf(n, kind, m)
		return
	}

	for i := 0; i < n.ChildCount(); i++ {
		b.walk(n.Child(i), childDepth)
	}
}

// visitLeaf handles terminal tokens: Halstead operator/operand counting plus
// physical code-line attribution.
func (b *builder) visitLeaf(n node.Node, kind string, m *metrics.Metrics) {
	t := b.table

	if t.LogicalOps[kind] {
		m.Cyclomatic.Add()
		m.Cognitive.AddFlat()
		m.Halstead.AddOperator(n.Text(b.source))
		m.LOC.AddCode(n.StartLine(), n.EndLine())
		return
	}

	if !n.IsNamed() && t.IsOperatorToken(kind) {
		m.Halstead.AddOperator(n.Text(b.source))
	}
	m.LOC.AddCode(n.StartLine(), n.EndLine())
}

func (b *builder) openSpace(n node.Node, kind string) {
	t := b.table

	var sk Kind
	switch {
	case t.OpensFunc(kind):
		sk = KindFunction
	case t.OpensClosure(kind):
		sk = KindClosure
	default:
		sk = KindClass
	}

	name := b.spaceName(n)
	sp := &Space{
		Name:      name,
		Kind:      sk,
		StartLine: n.StartLine(),
		EndLine:   n.EndLine(),
	}

	f := &frame{
		space:   sp,
		closure: sk == KindClosure,
		public:  t.VisibilityOf(n, name, b.source) == lang.Public,
	}
	if sk.FuncLike() {
		sp.Metrics.NArgs.SetOwn(b.countParams(n))
	}
	b.stack = append(b.stack, f)
}

func (b *builder) closeSpace() {
	f := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	parent := b.top()

	sp := f.space
	sp.Metrics.LOC.SetRegion(b.ownRegion(f))
	sp.Metrics.Finalize(sp.Kind.FuncLike())

	pm := &parent.space.Metrics
	if sp.Kind.FuncLike() {
		pm.NOM.AddFunction(f.closure)
		if parent.space.Kind == KindClass && !f.closure {
			pm.NPM.AddMethod(f.public)
			pm.WMC.AddMethod(sp.Metrics.Cyclomatic.Value)
		}
	}
	pm.Merge(&sp.Metrics)

	parent.childSpans = append(parent.childSpans, span{sp.StartLine, sp.EndLine})
	parent.space.Spaces = append(parent.space.Spaces, sp)
}

// spaceName resolves a declaration's display name, preferring the table's
// hook, then the grammar's "name" field.
func (b *builder) spaceName(n node.Node) string {
	if b.table.Name != nil {
		if name := b.table.Name(n, b.source); name != "" {
			return name
		}
	}
	if nameNode := n.ChildByField("name"); nameNode.Valid() {
		if name := nameNode.Text(b.source); name != "" {
			return name
		}
	}
	return anonymousName
}

// countParams resolves the declared arity of a function-like node.
func (b *builder) countParams(n node.Node) uint32 {
	params := n.ChildByField("parameters")
	if !params.Valid() || !b.table.Params[params.Kind()] {
		params = node.Node{}
		for i := 0; i < n.NamedChildCount(); i++ {
			if c := n.NamedChild(i); b.table.Params[c.Kind()] {
				params = c
				break
			}
		}
	}
	if !params.Valid() {
		return 0
	}
	if b.table.Arity != nil {
		return b.table.Arity(params)
	}
	var count uint32
	for i := 0; i < params.NamedChildCount(); i++ {
		if !b.table.Comment[params.NamedChild(i).Kind()] {
			count++
		}
	}
	return count
}

// addAttribute records one class-level field declaration on the current
// space, classified by visibility.
func (b *builder) addAttribute(n node.Node) {
	name := ""
	for _, field := range []string{"name", "left", "declarator"} {
		if c := n.ChildByField(field); c.Valid() {
			name = c.Text(b.source)
			break
		}
	}
	if name == "" && n.NamedChildCount() > 0 {
		name = n.NamedChild(0).Text(b.source)
	}
	public := b.table.VisibilityOf(n, name, b.source) == lang.Public
	b.top().space.Metrics.NPA.AddAttribute(public)
}

// isElseBranch reports whether a nesting construct is the chained branch of
// an enclosing conditional, either wrapped in an else clause or bound to the
// parent's "alternative" field.
func (b *builder) isElseBranch(n node.Node) bool {
	p := n.Parent()
	if !p.Valid() {
		return false
	}
	if p.Kind() == "else_clause" || p.Kind() == "else" {
		return true
	}
	if b.table.Nesting[p.Kind()] {
		if alt := p.ChildByField("alternative"); alt.Valid() && alt.Same(n) {
			return true
		}
	}
	return false
}

// ownRegion computes the physical extent a space keeps for itself: the
// lines of its range not claimed by any direct child space, and how many of
// those are blank.
func (b *builder) ownRegion(f *frame) (spanLines, blankCount uint32) {
	start, end := f.space.StartLine, f.space.EndLine
	if start == 0 || end < start {
		return 0, 0
	}
	for line := start; line <= end; line++ {
		if coveredBy(f.childSpans, line) {
			continue
		}
		spanLines++
		if int(line) < len(b.blank) && b.blank[line] {
			blankCount++
		}
	}
	return spanLines, blankCount
}

func coveredBy(spans []span, line uint32) bool {
	for _, s := range spans {
		if line >= s.start && line <= s.end {
			return true
		}
	}
	return false
}

// blankLines precomputes, 1-based, which source lines hold only whitespace.
func blankLines(source []byte) []bool {
	lines := 1
	for _, c := range source {
		if c == '\n' {
			lines++
		}
	}
	blank := make([]bool, lines+1)
	line, isBlank := 1, true
	for _, c := range source {
		switch c {
		case '\n':
			blank[line] = isBlank
			line++
			isBlank = true
		case ' ', '\t', '\r':
		default:
			isBlank = false
		}
	}
	if line < len(blank) {
		blank[line] = isBlank
	}
	return blank
}
