package internal

import (
	"strings"
)

type builtin struct {
	declaredType string
	kind         symbolKind
	// arity is the most arguments a builtin function takes, -1 for any.
	arity        int
	render       func(args []string) string
}

func constant(value string) func([]string) string {
	return func([]string) string {
		return value
	}
}

// firstArg renders the first argument, or fallback when the call has none.
func firstArg(format, fallback string) func([]string) string {
	return func(args []string) string {
		if len(args) == 0 {
			return fallback
		}
		return strings.Replace(format, "%", args[0], 1)
	}
}

var builtins = map[string]*builtin{
	"輸出": {
		declaredType: "函數",
		kind:         symFunction,
		arity:        -1,
		render: func(args []string) string {
			return "Console.WriteLine(" + strings.Join(args, ", ") + ")"
		},
	},
	"輸入": {
		declaredType: "函數",
		kind:         symFunction,
		arity:        0,
		render:       constant("Console.ReadLine()"),
	},
	"長度": {
		declaredType: "函數",
		kind:         symFunction,
		arity:        1,
		render:       firstArg("Convert.ToString(%).Length", "0"),
	},
	"轉換": {
		declaredType: "函數",
		kind:         symFunction,
		arity:        1,
		render:       firstArg("Convert.ToDouble(%)", "0.0"),
	},
	"真": {
		declaredType: "布爾",
		kind:         symVariable,
		render:       constant("true"),
	},
	"假": {
		declaredType: "布爾",
		kind:         symVariable,
		render:       constant("false"),
	},
	"空": {
		declaredType: "空值",
		kind:         symVariable,
		render:       constant("null"),
	},
}

func defineBuiltins(t *symbolTable) {
	for name, b := range builtins {
		t.globals[name] = &symbol{
			name:         name,
			declaredType: b.declaredType,
			kind:         b.kind,
			builtin:      true,
		}
	}
}
