package internal

import "fmt"

// analyzer resolves names against a scoped symbol table
type analyzer struct {
	symbols  *symbolTable
	// declared holds every symbol the program defines, in source order.
	declared []*symbol
}

// Analyze checks that every name used in program is declared and that no
// scope declares a name twice. Identifiers and calls are annotated with the
// symbol they resolve to. Failures are *CompileError of kind ErrSemantic.
func Analyze(program *Program) error {
	_, err := analyzeProgram(program)
	return err
}

// SymbolListing analyzes program and prints every declared symbol, one per
// line in declaration order.
func SymbolListing(program *Program) (string, error) {
	a, err := analyzeProgram(program)
	if err != nil {
		return "", err
	}
	out := ""
	for _, sym := range a.declared {
		out += sym.String() + "\n"
	}
	return out, nil
}

func analyzeProgram(program *Program) (a *analyzer, err error) {
	a = &analyzer{
		symbols: newSymbolTable(),
	}

	defer func() {
		if r := recover(); r != nil {
			compileErr, ok := r.(*CompileError)
			if !ok {
				panic(r)
			}
			a, err = nil, compileErr
		}
	}()
	a.analyze(program)
	return a, nil
}

func (a *analyzer) analyze(program *Program) {
	a.symbols.reset()
	a.declared = nil
	a.stmts(program.Stmts)
}

func (a *analyzer) stmts(stmts []stmt) {
	for _, s := range stmts {
		a.stmt(s)
	}
}

// scoped walks stmts inside a fresh scope.
func (a *analyzer) scoped(stmts []stmt) {
	a.symbols.enterScope()
	defer a.symbols.leaveScope()
	a.stmts(stmts)
}

func (a *analyzer) stmt(s stmt) {
	switch s := s.(type) {
	case *varStmt:
		if s.initializer != nil {
			a.expr(s.initializer)
		}
		a.declare(s.name, s.typ.lexeme, symVariable)
	case *paramStmt:
		a.declare(s.name, s.typ.lexeme, symParameter)
	case *fnStmt:
		// Declared before the body so the function can call itself.
		a.declare(s.name, "函數", symFunction)
		a.symbols.enterScope()
		for _, param := range s.params {
			a.stmt(param)
		}
		a.stmts(s.body)
		a.symbols.leaveScope()
	case *ifStmt:
		a.expr(s.condition)
		a.scoped(s.thenBranch)
		a.scoped(s.elseBranch)
	case *loopStmt:
		a.scoped(s.body)
	case *printStmt:
		a.expr(s.value)
	case *returnStmt:
		if s.value != nil {
			a.expr(s.value)
		}
	case *assignStmt:
		sym := a.resolve(s.name)
		if sym.kind == symFunction || sym.builtin {
			a.fatal(errNotAssignable, s.name)
		}
		a.expr(s.value)
	case *breakStmt:
	case *exprStmt:
		a.expr(s.expression)
	default:
		panic(fmt.Sprintf("analyzer: unexpected statement %T", s))
	}
}

func (a *analyzer) expr(e expr) {
	switch e := e.(type) {
	case *binaryExpr:
		a.expr(e.left)
		a.expr(e.right)
	case *literalExpr:
	case *variableExpr:
		e.resolved = a.resolve(e.name)
	case *callExpr:
		sym := a.resolve(e.callee)
		if sym.kind != symFunction {
			a.fatal(errNotCallable, e.callee)
		}
		if b, ok := builtins[e.callee.lexeme]; ok && sym.builtin && b.arity >= 0 && len(e.arguments) > b.arity {
			a.fatal(errTooManyArguments, e.callee)
		}
		e.resolved = sym
		for _, arg := range e.arguments {
			a.expr(arg)
		}
	case *listExpr:
		for _, el := range e.elements {
			a.expr(el)
		}
	default:
		panic(fmt.Sprintf("analyzer: unexpected expression %T", e))
	}
}

func (a *analyzer) declare(name *token, declaredType string, kind symbolKind) {
	sym, err := a.symbols.define(name.lexeme, declaredType, kind)
	if err != nil {
		a.fatal(err, name)
	}
	sym.line, sym.column = name.line, name.column
	a.declared = append(a.declared, sym)
}

func (a *analyzer) resolve(name *token) *symbol {
	sym, ok := a.symbols.lookup(name.lexeme)
	if !ok {
		a.fatal(errUndeclared, name)
	}
	return sym
}

func (a *analyzer) fatal(err error, tk *token) {
	context := "global scope"
	if depth := a.symbols.depth(); depth > 0 {
		context = fmt.Sprintf("scope %d", depth)
	}
	panic(&CompileError{
		Kind:    ErrSemantic,
		Err:     err,
		Line:    tk.line,
		Column:  tk.column,
		Lexeme:  tk.lexeme,
		Context: context,
	})
}
