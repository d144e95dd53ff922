package internal

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// mangledPrefix starts every identifier rewritten from Han characters.
const mangledPrefix = "變量_"

type generator struct {
	builder strings.Builder
	indent  int
	opts    Options
}

// Generate writes program as a C# compilation unit using DefaultOptions.
func Generate(program *Program) string {
	return GenerateWithOptions(program, DefaultOptions())
}

// GenerateWithOptions writes program as a C# compilation unit. Every brace
// it opens is closed, whatever the shape of the tree.
func GenerateWithOptions(program *Program, opts Options) string {
	g := &generator{
		opts: opts.withDefaults(),
	}
	return g.generate(program)
}

func (g *generator) generate(program *Program) string {
	g.builder.Reset()
	g.indent = 0

	g.line("using System;")
	g.line("using System.Collections.Generic;")
	g.line("")
	g.line("namespace " + g.opts.Namespace)
	g.open()
	g.line("public class " + g.opts.Class)
	g.open()
	g.line("public static void Main()")
	g.open()

	g.stmts(program.Stmts)

	g.close()
	g.close()
	g.close()

	return g.builder.String()
}

func (g *generator) stmts(stmts []stmt) {
	for _, s := range stmts {
		g.stmt(s)
	}
}

func (g *generator) block(stmts []stmt) {
	g.open()
	g.stmts(stmts)
	g.close()
}

func (g *generator) stmt(s stmt) {
	switch s := s.(type) {
	case *varStmt:
		typ := csharpType(s.typ.lexeme)
		value := defaultValue(typ)
		if s.initializer != nil {
			value = g.expr(s.initializer)
		}
		g.line(fmt.Sprintf("%s %s = %s;", typ, identifier(s.name.lexeme), value))
	case *paramStmt:
		// Written as part of the function signature.
	case *fnStmt:
		params := make([]string, len(s.params))
		for i, param := range s.params {
			params[i] = csharpType(param.typ.lexeme) + " " + identifier(param.name.lexeme)
		}
		g.line(fmt.Sprintf("dynamic %s(%s)", identifier(s.name.lexeme), strings.Join(params, ", ")))
		g.open()
		g.stmts(s.body)
		if !endsWithReturn(s.body) {
			g.line("return null;")
		}
		g.close()
	case *ifStmt:
		g.line("if (" + g.expr(s.condition) + ")")
		g.block(s.thenBranch)
		if len(s.elseBranch) > 0 {
			g.line("else")
			g.block(s.elseBranch)
		}
	case *loopStmt:
		g.line("while (true)")
		g.block(s.body)
	case *printStmt:
		g.line("Console.WriteLine(" + g.expr(s.value) + ");")
	case *returnStmt:
		value := "null"
		if s.value != nil {
			value = g.expr(s.value)
		}
		g.line("return " + value + ";")
	case *assignStmt:
		g.line(identifier(s.name.lexeme) + " = " + g.expr(s.value) + ";")
	case *breakStmt:
		g.line("break;")
	case *exprStmt:
		g.line(g.expr(s.expression) + ";")
	default:
		panic(fmt.Sprintf("codegen: unexpected statement %T", s))
	}
}

func (g *generator) expr(e expr) string {
	switch e := e.(type) {
	case *binaryExpr:
		return "(" + g.expr(e.left) + " " + e.op.csharp() + " " + g.expr(e.right) + ")"
	case *literalExpr:
		if e.kind == tkString {
			return quote(e.text)
		}
		return e.text
	case *variableExpr:
		if b := builtinFor(e.name.lexeme, e.resolved, symVariable); b != nil {
			return b.render(nil)
		}
		return identifier(e.name.lexeme)
	case *callExpr:
		args := g.exprs(e.arguments)
		if b := builtinFor(e.callee.lexeme, e.resolved, symFunction); b != nil {
			return b.render(args)
		}
		return identifier(e.callee.lexeme) + "(" + strings.Join(args, ", ") + ")"
	case *listExpr:
		return "new List<object> { " + strings.Join(g.exprs(e.elements), ", ") + " }"
	default:
		panic(fmt.Sprintf("codegen: unexpected expression %T", e))
	}
}

func (g *generator) exprs(exprs []expr) []string {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		out[i] = g.expr(e)
	}
	return out
}

func (g *generator) open() {
	g.line("{")
	g.indent++
}

func (g *generator) close() {
	if g.indent > 0 {
		g.indent--
	}
	g.line("}")
}

func (g *generator) line(code string) {
	if code != "" {
		g.builder.WriteString(strings.Repeat(g.opts.Indent, g.indent))
		g.builder.WriteString(code)
	}
	g.builder.WriteString("\n")
}

// builtinFor returns the builtin a name stands for. Without a resolved
// symbol the name alone decides; with one, only an unshadowed builtin counts.
func builtinFor(name string, resolved *symbol, kind symbolKind) *builtin {
	if resolved != nil && !resolved.builtin {
		return nil
	}
	b, ok := builtins[name]
	if !ok || b.kind != kind {
		return nil
	}
	return b
}

func endsWithReturn(stmts []stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	_, ok := stmts[len(stmts)-1].(*returnStmt)
	return ok
}

func csharpType(typ string) string {
	switch typ {
	case "一數":
		return "double"
	case "一言":
		return "string"
	case "一列":
		return "List<object>"
	}
	return "object"
}

func defaultValue(csharpType string) string {
	switch csharpType {
	case "double":
		return "0.0"
	case "string":
		return `""`
	case "List<object>":
		return "new List<object>()"
	}
	return "null"
}

// Braces inside strings become unicode escapes.
var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"{", `\u007B`,
	"}", `\u007D`,
)

func quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// identifier keeps plain ASCII identifiers and rewrites every other name,
// CJK text included, to mangledPrefix plus the FNV-1a hash of the name.
func identifier(name string) string {
	if isPlainIdentifier(name) {
		if csharpKeywords[name] {
			return "@" + name
		}
		return name
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return fmt.Sprintf("%s%016x", mangledPrefix, h.Sum64())
}

// isPlainIdentifier matches [A-Za-z_][A-Za-z0-9_]*.
func isPlainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if !isAlpha(r) && (i == 0 || !isDigit(r)) {
			return false
		}
	}
	return true
}

// csharpKeywords are reserved in C# and need the @ prefix as identifiers.
var csharpKeywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true, "default": true,
	"delegate": true, "do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true, "finally": true,
	"fixed": true, "float": true, "for": true, "foreach": true, "goto": true,
	"if": true, "implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true, "out": true,
	"override": true, "params": true, "private": true, "protected": true, "public": true,
	"readonly": true, "ref": true, "return": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}
