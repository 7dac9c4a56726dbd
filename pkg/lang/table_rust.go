package lang

import (
	"github.com/stratametrics/strata/pkg/node"
)

// rustName resolves names for declarations whose identifier is not under the
// conventional "name" field, notably impl blocks.
func rustName(n node.Node, source []byte) string {
	if name := n.ChildByField("name"); name.Valid() {
		return name.Text(source)
	}
	if n.Kind() == "impl_item" {
		if ty := n.ChildByField("type"); ty.Valid() {
			return ty.Text(source)
		}
	}
	return ""
}

// rustVisibility: pub (in any form) is public, everything else private.
func rustVisibility(n node.Node, _ string, _ []byte) Visibility {
	for i := 0; i < n.ChildCount(); i++ {
		if n.Child(i).Kind() == "visibility_modifier" {
			return Public
		}
	}
	return Private
}

func tableRust() *Table {
	return &Table{
		Func:    set("function_item"),
		Closure: set("closure_expression"),
		Class:   set("struct_item", "enum_item", "trait_item", "impl_item"),

		Decision: set(
			"if_expression",
			"if_let_expression",
			"match_arm",
			"while_expression",
			"while_let_expression",
			"for_expression",
			"loop_expression",
		),
		Nesting: set(
			"if_expression",
			"if_let_expression",
			"match_expression",
			"while_expression",
			"while_let_expression",
			"for_expression",
			"loop_expression",
		),
		Flat:       set("break_expression", "continue_expression"),
		LogicalOps: set("&&", "||"),

		Exit:      set("return_expression"),
		Statement: set("let_declaration", "expression_statement", "empty_statement"),

		Assignment: set("assignment_expression", "compound_assignment_expr", "let_declaration"),
		Call:       set("call_expression", "macro_invocation"),
		Condition:  set("if_expression", "if_let_expression", "match_arm"),

		Params: set("parameters", "closure_parameters"),
		Field:  set("field_declaration"),

		Operand: set(
			"identifier",
			"field_identifier",
			"type_identifier",
			"integer_literal",
			"float_literal",
			"string_literal",
			"raw_string_literal",
			"char_literal",
			"boolean_literal",
			"self",
		),
		Comment: set("line_comment", "block_comment"),

		Name:     rustName,
		Classify: rustVisibility,
	}
}
