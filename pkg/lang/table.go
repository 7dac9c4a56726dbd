package lang

import (
	"github.com/stratametrics/strata/pkg/node"
)

// Visibility partitions declarations for the NPM/NPA counts. Languages
// without a visibility concept report everything as public.
type Visibility uint8

const (
	Public Visibility = iota
	Private
)

// Table is an immutable classification of one grammar's node kinds into the
// semantic categories the metric collectors consume. Tables are built once
// per language by the registry and shared read-only afterwards; nothing may
// mutate a table after Build returns it.
type Table struct {
	Lang Language

	// Space boundaries.
	Func    map[string]bool // named function/method declarations
	Closure map[string]bool // anonymous functions, lambdas, blocks
	Class   map[string]bool // class-like declarations (incl. impl/trait/module)

	// Control flow.
	Decision   map[string]bool // cyclomatic decision points
	Nesting    map[string]bool // cognitive constructs that deepen nesting
	Flat       map[string]bool // cognitive constructs counted without nesting
	LogicalOps map[string]bool // short-circuit operator token kinds

	// Exits and statements.
	Exit      map[string]bool // return/throw/raise style exit points
	Statement map[string]bool // logical-LOC statements

	// ABC triplet.
	Assignment map[string]bool
	Call       map[string]bool
	Condition  map[string]bool

	// Declarations.
	Params map[string]bool // parameter-list container kinds
	Field  map[string]bool // attribute/field declaration kinds

	// Halstead and LOC.
	Operand map[string]bool // named leaf kinds counted as operands
	Comment map[string]bool

	// Name resolves a declaration's identifier when the grammar does not
	// expose it through the conventional "name" field. Nil means the
	// default field lookup applies.
	Name func(n node.Node, source []byte) string

	// Classify resolves declaration visibility. Nil means every
	// declaration is public.
	Classify func(n node.Node, name string, source []byte) Visibility

	// Arity counts the parameters declared by a Params container when the
	// grammar groups several names under one declaration. Nil means each
	// named child counts as one parameter.
	Arity func(params node.Node) uint32
}

// set builds a lookup set from kind literals.
func set(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// merge combines several sets into a new one.
func merge(sets ...map[string]bool) map[string]bool {
	m := make(map[string]bool)
	for _, s := range sets {
		for k := range s {
			m[k] = true
		}
	}
	return m
}

// operatorSkip lists anonymous tokens never counted as Halstead operators:
// pure separators carry no operational meaning.
var operatorSkip = set(",", ";", "{", "}")

// IsOperatorToken reports whether an anonymous leaf token counts as a
// Halstead operator. Keywords, symbols and brackets qualify; separators and
// braces do not.
func (t *Table) IsOperatorToken(kind string) bool {
	return !operatorSkip[kind]
}

// SpaceKindOf reports whether the kind opens a space and which flavor.
func (t *Table) OpensFunc(kind string) bool    { return t.Func[kind] }
func (t *Table) OpensClosure(kind string) bool { return t.Closure[kind] }
func (t *Table) OpensClass(kind string) bool   { return t.Class[kind] }

// VisibilityOf classifies a declaration, defaulting to public.
func (t *Table) VisibilityOf(n node.Node, name string, source []byte) Visibility {
	if t.Classify == nil {
		return Public
	}
	return t.Classify(n, name, source)
}
