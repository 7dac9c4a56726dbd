package lang

import (
	"strings"

	"github.com/stratametrics/strata/pkg/node"
)

// ecmaVisibility treats #private fields, TypeScript private/protected
// accessibility, and the conventional leading underscore as private.
func ecmaVisibility(n node.Node, name string, source []byte) Visibility {
	if strings.HasPrefix(name, "#") || strings.HasPrefix(name, "_") {
		return Private
	}
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c.Kind() == "accessibility_modifier" {
			switch c.Text(source) {
			case "private", "protected":
				return Private
			}
		}
	}
	return Public
}

// tableECMA is the shared JavaScript grammar core; the TypeScript and TSX
// tables extend it.
func tableECMA() *Table {
	return &Table{
		Func: set(
			"function_declaration",
			"generator_function_declaration",
			"method_definition",
		),
		Closure: set(
			"arrow_function",
			"function",
			"function_expression",
			"generator_function",
		),
		Class: set("class_declaration", "class"),

		Decision: set(
			"if_statement",
			"for_statement",
			"for_in_statement",
			"while_statement",
			"do_statement",
			"switch_case",
			"catch_clause",
			"ternary_expression",
		),
		Nesting: set(
			"if_statement",
			"for_statement",
			"for_in_statement",
			"while_statement",
			"do_statement",
			"switch_statement",
			"try_statement",
			"catch_clause",
		),
		Flat:       set("break_statement", "continue_statement"),
		LogicalOps: set("&&", "||", "??"),

		Exit: set("return_statement", "throw_statement"),
		Statement: set(
			"expression_statement",
			"lexical_declaration",
			"variable_declaration",
			"return_statement",
			"if_statement",
			"for_statement",
			"for_in_statement",
			"while_statement",
			"do_statement",
			"switch_statement",
			"break_statement",
			"continue_statement",
			"throw_statement",
			"try_statement",
			"labeled_statement",
			"debugger_statement",
		),

		Assignment: set(
			"assignment_expression",
			"augmented_assignment_expression",
			"update_expression",
			"variable_declarator",
		),
		Call: set("call_expression", "new_expression"),
		Condition: set(
			"if_statement",
			"ternary_expression",
			"switch_case",
			"catch_clause",
		),

		Params: set("formal_parameters"),
		Field:  set("public_field_definition", "field_definition"),

		Operand: set(
			"identifier",
			"property_identifier",
			"shorthand_property_identifier",
			"shorthand_property_identifier_pattern",
			"number",
			"string",
			"template_string",
			"regex",
			"true",
			"false",
			"null",
			"undefined",
			"this",
			"super",
		),
		Comment: set("comment"),

		Classify: ecmaVisibility,
	}
}

func tableJavaScript() *Table {
	return tableECMA()
}

func tableTypeScript() *Table {
	t := tableECMA()
	t.Operand = merge(t.Operand, set("type_identifier"))
	t.Field = merge(t.Field, set("property_signature"))
	return t
}

func tableTSX() *Table {
	return tableTypeScript()
}
