package internal

import (
	"errors"
	"fmt"
)

// Error kinds. Every *CompileError matches exactly one of them with errors.Is.
var (
	ErrLexicalAmbiguity = errors.New("lexical ambiguity")
	ErrSyntax           = errors.New("syntax error")
	ErrSemantic         = errors.New("semantic error")
)

// CompileError is the failure of one compilation stage
type CompileError struct {
	Kind    error
	Err     error
	Line    int
	Column  int
	Lexeme  string
	Context string
}

func (e *CompileError) Error() string {
	msg := fmt.Sprintf("%s on line %d, column %d", e.Kind, e.Line, e.Column)
	if e.Context != "" {
		msg += " in " + e.Context
	}
	msg += ": " + e.Err.Error()
	if e.Lexeme != "" {
		msg += fmt.Sprintf(" ('%s')", e.Lexeme)
	}
	return msg
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

func (e *CompileError) Is(target error) bool {
	return target == e.Kind
}

// at stamps the error with the position of tk.
func (e *CompileError) at(tk *token) *CompileError {
	e.Line = tk.line
	e.Column = tk.column
	return e
}

// Lexer errors
var errInvalidNumeral = errors.New("Unrecognized numeral")

// Parser errors
var errExpectedType = errors.New("Expected type (一數, 一言 or 一列)")
var errExpectedNamed = errors.New("Expected '曰' before name")
var errExpectedName = errors.New("Expected name in 「」")
var errEmptyName = errors.New("Name cannot be empty")
var errExpectedEnd = errors.New("Expected '也' at end of statement")
var errExpectedThen = errors.New("Expected '者' after condition")
var errExpectedBlockEnd = errors.New("Expected '云云' at end of block")
var errExpectedFunctionEnd = errors.New("Expected '之術也' at end of function")
var errFunctionNameMismatch = errors.New("Name after '是謂' does not match function")
var errExpectedValue = errors.New("Expected '其值' after variable")
var errExpectedExpression = errors.New("Expected expression")
var errExpectedCallee = errors.New("Expected function after '施'")
var errListOutsideList = errors.New("Only 一列 can be initialized with '、'")
var errUndefinedStmt = errors.New("Undefined statement")
var errOnlyAllowedInsideLoop = errors.New("Can only be used inside a loop")
var errOnlyAllowedInsideFunction = errors.New("Can only be used inside a function")

// Semantic errors
var errUndeclared = errors.New("Undeclared name")
var errRedeclared = errors.New("Name already declared in this scope")
var errNotCallable = errors.New("Name is not a function")
var errNotAssignable = errors.New("Cannot assign to a function or builtin")
var errTooManyArguments = errors.New("Too many arguments for builtin")
