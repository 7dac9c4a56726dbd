package lang

import (
	"unicode"
	"unicode/utf8"

	"github.com/stratametrics/strata/pkg/node"
)

func tableGo() *Table {
	return &Table{
		Func:    set("function_declaration", "method_declaration"),
		Closure: set("func_literal"),
		// Go has no class construct; methods attach to the unit space.
		Class: set(),

		Decision: set(
			"if_statement",
			"for_statement",
			"expression_case",
			"type_case",
			"communication_case",
		),
		Nesting: set(
			"if_statement",
			"for_statement",
			"expression_switch_statement",
			"type_switch_statement",
			"select_statement",
		),
		Flat:       set("break_statement", "continue_statement", "goto_statement"),
		LogicalOps: set("&&", "||"),

		Exit: set("return_statement"),
		Statement: set(
			"expression_statement",
			"short_var_declaration",
			"var_declaration",
			"const_declaration",
			"assignment_statement",
			"return_statement",
			"if_statement",
			"for_statement",
			"expression_switch_statement",
			"type_switch_statement",
			"select_statement",
			"go_statement",
			"defer_statement",
			"send_statement",
			"break_statement",
			"continue_statement",
			"goto_statement",
			"inc_statement",
			"dec_statement",
			"fallthrough_statement",
			"labeled_statement",
		),

		Assignment: set(
			"assignment_statement",
			"short_var_declaration",
			"var_declaration",
			"const_declaration",
			"inc_statement",
			"dec_statement",
		),
		Call:      set("call_expression"),
		Condition: set("if_statement", "expression_case", "type_case", "communication_case"),

		Params: set("parameter_list"),
		Field:  set("field_declaration"),

		Operand: set(
			"identifier",
			"field_identifier",
			"type_identifier",
			"package_identifier",
			"int_literal",
			"float_literal",
			"imaginary_literal",
			"rune_literal",
			"interpreted_string_literal",
			"raw_string_literal",
			"true",
			"false",
			"nil",
			"iota",
		),
		Comment: set("comment"),

		// One parameter_declaration can group several names, so the
		// arity is the name count, not the declaration count.
		Arity: func(params node.Node) uint32 {
			var total uint32
			for i := 0; i < params.NamedChildCount(); i++ {
				decl := params.NamedChild(i)
				switch decl.Kind() {
				case "parameter_declaration", "variadic_parameter_declaration":
					var names uint32
					for j := 0; j < decl.NamedChildCount(); j++ {
						if decl.NamedChild(j).Kind() == "identifier" {
							names++
						}
					}
					if names == 0 {
						names = 1 // unnamed parameter, e.g. func(int)
					}
					total += names
				}
			}
			return total
		},

		Classify: func(_ node.Node, name string, _ []byte) Visibility {
			r, _ := utf8.DecodeRuneInString(name)
			if r != utf8.RuneError && unicode.IsUpper(r) {
				return Public
			}
			return Private
		},
	}
}
