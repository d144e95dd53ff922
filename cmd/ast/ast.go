package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

//go:generate sh -c "go run . Stmt > ../../internal/stmt.go"
//go:generate sh -c "go run . Expr > ../../internal/expr.go"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Stmt|Expr")
		os.Exit(1)
	}

	var out string
	switch os.Args[1] {
	case "Stmt":
		out = generateAst("Stmt", []string{
			"Var: keyword *token, typ *token, name *token, initializer expr",
			"Param: typ *token, name *token",
			"Fn: keyword *token, name *token, params []*paramStmt, body []stmt",
			"If: keyword *token, condition expr, thenBranch []stmt, elseBranch []stmt",
			"Loop: keyword *token, body []stmt",
			"Print: keyword *token, value expr",
			"Return: keyword *token, value expr",
			"Assign: name *token, value expr",
			"Break: keyword *token",
			"Expr: keyword *token, expression expr",
		})
	case "Expr":
		out = generateAst("Expr", []string{
			"Binary: operator *token, left expr, op operator, right expr",
			"Literal: start *token, text string, kind tokenType",
			"Variable: name *token, resolved *symbol",
			"Call: keyword *token, callee *token, arguments []expr, resolved *symbol",
			"List: start *token, elements []expr",
		})
	default:
		fmt.Fprintln(os.Stderr, "Usage: ast Stmt|Expr")
		os.Exit(1)
	}

	src, err := format.Source([]byte(out))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(string(src))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\tat() *token\n"
	out += "\t" + strings.ToLower(baseName) + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	// The first field is always the token the node starts at.
	first := strings.Fields(fieldArray[0])[0]
	out += "func (s *" + structName + ") at() *token {\n"
	out += "\treturn s." + first + "\n"
	out += "}\n\n"
	out += "func (s *" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Method Definition

	return out
}
