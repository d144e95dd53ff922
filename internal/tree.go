package internal

import (
	"fmt"
	"strings"
)

// FormatTree dumps program as one s-expression per top level statement
func FormatTree(program *Program) string {
	out := ""
	for _, s := range program.Stmts {
		out += formatStmt(s) + "\n"
	}
	return out
}

// TokenListing tokenizes source and prints one token per line.
func TokenListing(source string) string {
	var b strings.Builder
	for _, tk := range Tokenize(source) {
		b.WriteString(tk.String())
		b.WriteString("\n")
	}
	return b.String()
}

func formatBody(stmts []stmt) string {
	out := ""
	for _, s := range stmts {
		out += " " + formatStmt(s)
	}
	return out
}

func formatStmt(s stmt) string {
	switch s := s.(type) {
	case *varStmt:
		if s.initializer == nil {
			return fmt.Sprintf("(var %s %s)", s.typ.lexeme, s.name.lexeme)
		}
		return fmt.Sprintf("(var %s %s %s)", s.typ.lexeme, s.name.lexeme, formatExpr(s.initializer))
	case *paramStmt:
		return fmt.Sprintf("(param %s %s)", s.typ.lexeme, s.name.lexeme)
	case *fnStmt:
		out := "(fn " + s.name.lexeme + " ("
		for i, param := range s.params {
			out += formatStmt(param)
			if i < len(s.params)-1 {
				out += " "
			}
		}
		return out + ")" + formatBody(s.body) + ")"
	case *ifStmt:
		out := fmt.Sprintf("(if %s (then%s)", formatExpr(s.condition), formatBody(s.thenBranch))
		if len(s.elseBranch) > 0 {
			out += fmt.Sprintf(" (else%s)", formatBody(s.elseBranch))
		}
		return out + ")"
	case *loopStmt:
		return "(loop" + formatBody(s.body) + ")"
	case *printStmt:
		return fmt.Sprintf("(print %s)", formatExpr(s.value))
	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", formatExpr(s.value))
	case *assignStmt:
		return fmt.Sprintf("(set %s %s)", s.name.lexeme, formatExpr(s.value))
	case *breakStmt:
		return "(break)"
	case *exprStmt:
		return formatExpr(s.expression)
	}
	return fmt.Sprintf("(unknown %T)", s)
}

func formatExpr(e expr) string {
	switch e := e.(type) {
	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.op, formatExpr(e.left), formatExpr(e.right))
	case *literalExpr:
		if e.kind == tkString {
			return "\"" + e.text + "\""
		}
		return e.text
	case *variableExpr:
		return e.name.lexeme
	case *callExpr:
		out := "(call " + e.callee.lexeme
		for _, arg := range e.arguments {
			out += " " + formatExpr(arg)
		}
		return out + ")"
	case *listExpr:
		out := "(list"
		for _, el := range e.elements {
			out += " " + formatExpr(el)
		}
		return out + ")"
	}
	return fmt.Sprintf("(unknown %T)", e)
}
