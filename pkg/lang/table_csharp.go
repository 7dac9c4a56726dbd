package lang

import (
	"github.com/stratametrics/strata/pkg/node"
)

// csharpVisibility applies C#'s default of private-unless-stated: only an
// explicit public modifier makes a member public.
func csharpVisibility(n node.Node, _ string, source []byte) Visibility {
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c.Kind() == "modifier" && c.Text(source) == "public" {
			return Public
		}
	}
	return Private
}

func tableCSharp() *Table {
	return &Table{
		Func: set(
			"method_declaration",
			"constructor_declaration",
			"destructor_declaration",
			"local_function_statement",
		),
		Closure: set("lambda_expression", "anonymous_method_expression"),
		Class: set(
			"class_declaration",
			"struct_declaration",
			"interface_declaration",
			"record_declaration",
		),

		Decision: set(
			"if_statement",
			"for_statement",
			"for_each_statement",
			"while_statement",
			"do_statement",
			"catch_clause",
			"conditional_expression",
			"switch_section",
			"switch_expression_arm",
		),
		Nesting: set(
			"if_statement",
			"for_statement",
			"for_each_statement",
			"while_statement",
			"do_statement",
			"switch_statement",
			"switch_expression",
			"try_statement",
			"catch_clause",
		),
		Flat:       set("break_statement", "continue_statement", "goto_statement"),
		LogicalOps: set("&&", "||", "??"),

		Exit: set("return_statement", "throw_statement"),
		Statement: set(
			"expression_statement",
			"local_declaration_statement",
			"return_statement",
			"if_statement",
			"for_statement",
			"for_each_statement",
			"while_statement",
			"do_statement",
			"switch_statement",
			"break_statement",
			"continue_statement",
			"throw_statement",
			"try_statement",
			"using_statement",
			"lock_statement",
			"yield_statement",
			"goto_statement",
			"labeled_statement",
		),

		Assignment: set("assignment_expression", "variable_declarator"),
		Call:       set("invocation_expression", "object_creation_expression"),
		Condition: set(
			"if_statement",
			"conditional_expression",
			"switch_section",
			"switch_expression_arm",
			"catch_clause",
		),

		Params: set("parameter_list"),
		Field:  set("field_declaration", "property_declaration", "event_field_declaration"),

		Operand: set(
			"identifier",
			"integer_literal",
			"real_literal",
			"string_literal",
			"verbatim_string_literal",
			"character_literal",
			"boolean_literal",
			"null_literal",
		),
		Comment: set("comment"),

		Classify: csharpVisibility,
	}
}
