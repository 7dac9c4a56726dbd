package lang

import (
	"github.com/stratametrics/strata/pkg/node"
)

// cDeclName digs the declared identifier out of a C/C++ declarator chain:
// function_definition wraps function_declarator wraps (pointer_declarator
// wraps ...) the identifier itself.
func cDeclName(n node.Node, source []byte) string {
	d := n.ChildByField("declarator")
	for d.Valid() {
		switch d.Kind() {
		case "identifier", "field_identifier", "qualified_identifier",
			"destructor_name", "operator_name":
			return d.Text(source)
		}
		next := d.ChildByField("declarator")
		if !next.Valid() {
			// pointer/reference declarators occasionally hold the
			// identifier as a bare named child.
			for i := 0; i < d.NamedChildCount(); i++ {
				c := d.NamedChild(i)
				if c.Kind() == "identifier" || c.Kind() == "field_identifier" {
					return c.Text(source)
				}
			}
			return ""
		}
		d = next
	}
	return ""
}

func tableC() *Table {
	return &Table{
		Func:    set("function_definition"),
		Closure: set(),
		Class:   set(),

		Decision: set(
			"if_statement",
			"for_statement",
			"while_statement",
			"do_statement",
			"case_statement",
			"conditional_expression",
		),
		Nesting: set(
			"if_statement",
			"for_statement",
			"while_statement",
			"do_statement",
			"switch_statement",
		),
		Flat:       set("break_statement", "continue_statement", "goto_statement"),
		LogicalOps: set("&&", "||"),

		Exit: set("return_statement"),
		Statement: set(
			"expression_statement",
			"declaration",
			"return_statement",
			"if_statement",
			"for_statement",
			"while_statement",
			"do_statement",
			"switch_statement",
			"case_statement",
			"break_statement",
			"continue_statement",
			"goto_statement",
			"labeled_statement",
		),

		Assignment: set("assignment_expression", "init_declarator", "update_expression"),
		Call:       set("call_expression"),
		Condition:  set("if_statement", "case_statement", "conditional_expression"),

		Params: set("parameter_list"),
		Field:  set("field_declaration"),

		Operand: set(
			"identifier",
			"field_identifier",
			"type_identifier",
			"number_literal",
			"string_literal",
			"char_literal",
			"true",
			"false",
			"null",
		),
		Comment: set("comment"),

		Name: cDeclName,
	}
}

func tableCPP() *Table {
	t := tableC()

	t.Closure = set("lambda_expression")
	t.Class = set("class_specifier", "struct_specifier")

	t.Decision = merge(t.Decision, set("catch_clause", "for_range_loop"))
	t.Nesting = merge(t.Nesting, set("for_range_loop", "try_statement", "catch_clause"))
	t.Condition = merge(t.Condition, set("catch_clause"))

	t.Exit = merge(t.Exit, set("throw_statement"))
	t.Statement = merge(t.Statement, set("throw_statement", "try_statement", "for_range_loop"))
	t.Call = merge(t.Call, set("new_expression"))

	t.Operand = merge(t.Operand, set("this", "nullptr", "raw_string_literal"))

	return t
}
