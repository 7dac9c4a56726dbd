package lang

import (
	"github.com/stratametrics/strata/pkg/node"
)

// javaVisibility treats private and protected members as private; everything
// else (public or package-visible) reports as public.
func javaVisibility(n node.Node, _ string, source []byte) Visibility {
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c.Kind() != "modifiers" {
			continue
		}
		for j := 0; j < c.ChildCount(); j++ {
			switch c.Child(j).Text(source) {
			case "private", "protected":
				return Private
			}
		}
	}
	return Public
}

func tableJava() *Table {
	return &Table{
		Func:    set("method_declaration", "constructor_declaration"),
		Closure: set("lambda_expression"),
		Class: set(
			"class_declaration",
			"interface_declaration",
			"enum_declaration",
			"record_declaration",
		),

		Decision: set(
			"if_statement",
			"for_statement",
			"enhanced_for_statement",
			"while_statement",
			"do_statement",
			"catch_clause",
			"ternary_expression",
			"switch_block_statement_group",
			"switch_rule",
		),
		Nesting: set(
			"if_statement",
			"for_statement",
			"enhanced_for_statement",
			"while_statement",
			"do_statement",
			"switch_expression",
			"try_statement",
			"catch_clause",
		),
		Flat:       set("break_statement", "continue_statement"),
		LogicalOps: set("&&", "||"),

		Exit: set("return_statement", "throw_statement"),
		Statement: set(
			"expression_statement",
			"local_variable_declaration",
			"return_statement",
			"if_statement",
			"for_statement",
			"enhanced_for_statement",
			"while_statement",
			"do_statement",
			"switch_expression",
			"break_statement",
			"continue_statement",
			"throw_statement",
			"try_statement",
			"labeled_statement",
			"yield_statement",
			"assert_statement",
		),

		Assignment: set("assignment_expression", "update_expression", "local_variable_declaration"),
		Call:       set("method_invocation", "object_creation_expression"),
		Condition: set(
			"if_statement",
			"ternary_expression",
			"switch_block_statement_group",
			"switch_rule",
			"catch_clause",
		),

		Params: set("formal_parameters"),
		Field:  set("field_declaration"),

		Operand: set(
			"identifier",
			"type_identifier",
			"decimal_integer_literal",
			"hex_integer_literal",
			"octal_integer_literal",
			"binary_integer_literal",
			"decimal_floating_point_literal",
			"hex_floating_point_literal",
			"string_literal",
			"character_literal",
			"true",
			"false",
			"null_literal",
			"this",
		),
		Comment: set("comment", "line_comment", "block_comment"),

		Classify: javaVisibility,
	}
}
