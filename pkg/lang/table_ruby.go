package lang

func tableRuby() *Table {
	return &Table{
		Func:    set("method", "singleton_method"),
		Closure: set("block", "do_block", "lambda"),
		Class:   set("class", "module"),

		Decision: set(
			"if",
			"elsif",
			"unless",
			"while",
			"until",
			"for",
			"when",
			"rescue",
			"conditional",
			"if_modifier",
			"unless_modifier",
			"while_modifier",
			"until_modifier",
		),
		Nesting: set("if", "unless", "while", "until", "for", "case", "begin"),
		Flat:    set("elsif", "when", "rescue", "break", "next", "redo", "retry"),
		// Ruby spells its short-circuit operators both ways.
		LogicalOps: set("&&", "||", "and", "or"),

		Exit: set("return"),
		Statement: set(
			"assignment",
			"operator_assignment",
			"call",
			"return",
			"if",
			"unless",
			"while",
			"until",
			"for",
			"case",
			"begin",
			"yield",
		),

		Assignment: set("assignment", "operator_assignment"),
		Call:       set("call"),
		Condition: set(
			"if",
			"elsif",
			"unless",
			"when",
			"conditional",
			"rescue",
			"if_modifier",
			"unless_modifier",
		),

		Params: set("method_parameters", "block_parameters", "lambda_parameters"),
		Field:  set(),

		Operand: set(
			"identifier",
			"constant",
			"instance_variable",
			"class_variable",
			"global_variable",
			"integer",
			"float",
			"string",
			"symbol",
			"simple_symbol",
			"true",
			"false",
			"nil",
			"self",
		),
		Comment: set("comment"),
	}
}
