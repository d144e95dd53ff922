package internal

import "fmt"

type symbolKind int

const (
	symVariable symbolKind = iota
	symFunction
	symParameter
)

func (k symbolKind) String() string {
	switch k {
	case symVariable:
		return "variable"
	case symFunction:
		return "function"
	case symParameter:
		return "parameter"
	}
	return "unknown"
}

type symbol struct {
	name         string
	declaredType string
	kind         symbolKind
	depth        int
	builtin      bool

	// Position of the declaring name, zero for builtins.
	line   int
	column int
}

// symbolTable holds the global frame and a stack of nested scopes. Lookups
// go from the innermost scope outwards and end at the globals.
type symbolTable struct {
	globals map[string]*symbol
	scopes  []map[string]*symbol
}

func newSymbolTable() *symbolTable {
	t := &symbolTable{}
	t.reset()
	return t
}

// reset drops every declared name and seeds the builtins again.
func (t *symbolTable) reset() {
	t.globals = make(map[string]*symbol)
	t.scopes = nil
	defineBuiltins(t)
}

func (t *symbolTable) depth() int {
	return len(t.scopes)
}

func (t *symbolTable) enterScope() {
	t.scopes = append(t.scopes, make(map[string]*symbol))
}

func (t *symbolTable) leaveScope() {
	if len(t.scopes) > 0 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

func (t *symbolTable) current() map[string]*symbol {
	if len(t.scopes) == 0 {
		return t.globals
	}
	return t.scopes[len(t.scopes)-1]
}

// define adds name to the current frame only. Names in enclosing frames may
// be shadowed.
func (t *symbolTable) define(name, declaredType string, kind symbolKind) (*symbol, error) {
	frame := t.current()
	if _, ok := frame[name]; ok {
		return nil, errRedeclared
	}
	sym := &symbol{
		name:         name,
		declaredType: declaredType,
		kind:         kind,
		depth:        t.depth(),
	}
	frame[name] = sym
	return sym, nil
}

func (t *symbolTable) lookup(name string) (*symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	sym, ok := t.globals[name]
	return sym, ok
}

func (s *symbol) String() string {
	return fmt.Sprintf("[%s] %s %s depth %d (%d:%d)", s.kind, s.name, s.declaredType, s.depth, s.line, s.column)
}
