package lang

import (
	"strings"

	"github.com/stratametrics/strata/pkg/node"
)

func tablePython() *Table {
	return &Table{
		Func:    set("function_definition"),
		Closure: set("lambda"),
		Class:   set("class_definition"),

		Decision: set(
			"if_statement",
			"elif_clause",
			"for_statement",
			"while_statement",
			"except_clause",
			"conditional_expression",
			"case_clause",
			"for_in_clause",
		),
		Nesting: set(
			"if_statement",
			"for_statement",
			"while_statement",
			"try_statement",
			"match_statement",
			"except_clause",
		),
		Flat:       set("elif_clause", "break_statement", "continue_statement"),
		LogicalOps: set("and", "or"),

		Exit: set("return_statement", "raise_statement"),
		Statement: set(
			"expression_statement",
			"return_statement",
			"if_statement",
			"for_statement",
			"while_statement",
			"try_statement",
			"with_statement",
			"raise_statement",
			"assert_statement",
			"import_statement",
			"import_from_statement",
			"pass_statement",
			"break_statement",
			"continue_statement",
			"global_statement",
			"nonlocal_statement",
			"delete_statement",
			"match_statement",
		),

		Assignment: set("assignment", "augmented_assignment", "named_expression"),
		Call:       set("call"),
		Condition: set(
			"if_statement",
			"elif_clause",
			"conditional_expression",
			"case_clause",
			"except_clause",
		),

		Params: set("parameters", "lambda_parameters"),
		// Class-body assignments declare attributes; the collector only
		// counts field kinds routed to class spaces.
		Field: set("assignment"),

		Operand: set(
			"identifier",
			"integer",
			"float",
			"string",
			"true",
			"false",
			"none",
			"ellipsis",
		),
		Comment: set("comment"),

		Classify: func(_ node.Node, name string, _ []byte) Visibility {
			if strings.HasPrefix(name, "_") {
				return Private
			}
			return Public
		},
	}
}
