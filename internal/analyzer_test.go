package internal

import (
	"errors"
	"testing"
)

func analyze(t *testing.T, source string) (*Program, error) {
	t.Helper()
	program, err := Parse(Tokenize(source))
	if err != nil {
		t.Fatalf("Error on: \n%s\n\tunexpected parse error %v", source, err)
	}
	return program, Analyze(program)
}

func checkAnalyze(t *testing.T, source string) {
	t.Helper()
	if _, err := analyze(t, source); err != nil {
		t.Errorf("Error on: \n%s\n\tunexpected error %v", source, err)
	}
}

func checkSemanticError(t *testing.T, source string, cause error) {
	t.Helper()
	_, err := analyze(t, source)
	if !errors.Is(err, ErrSemantic) || !errors.Is(err, cause) {
		t.Errorf("Error on: \n%s\n\texpected %v instead of %v", source, cause, err)
	}
}

func TestAnalyzeNames(t *testing.T) {
	checkAnalyze(t, "吾有一數曰「甲」其值三也\n云甲")
	checkAnalyze(t, "云真\n云假\n云空")
	checkAnalyze(t, "施「輸出」以施「長度」以「你好」")
	checkSemanticError(t, "云甲", errUndeclared)
	checkSemanticError(t, "甲其值三也", errUndeclared)
	checkSemanticError(t, "施甲", errUndeclared)

	// The initializer is checked before the name exists
	checkSemanticError(t, "吾有一數曰「甲」其值甲也", errUndeclared)
}

func TestAnalyzeScopes(t *testing.T) {
	// Same scope
	checkSemanticError(t, "吾有一數曰「甲」其值一也\n吾有一數曰「甲」其值二也", errRedeclared)
	checkSemanticError(t, "若真者\n吾有一數曰「甲」也\n吾有一言曰「甲」也\n云云", errRedeclared)
	checkSemanticError(t, "有術曰「甲」必先得一數曰「乙」、一數曰「乙」\n之術也", errRedeclared)
	checkSemanticError(t, "有術曰「甲」必先得一數曰「乙」\n吾有一數曰「乙」也\n之術也", errRedeclared)
	checkSemanticError(t, "吾有一數曰「真」也", errRedeclared)

	// Nested scopes may shadow
	checkAnalyze(t, "吾有一數曰「甲」其值一也\n若真者\n\t吾有一數曰「甲」其值二也\n云云")
	checkAnalyze(t, "若真者\n\t吾有一數曰「甲」也\n若非\n\t吾有一數曰「甲」也\n云云")
	checkAnalyze(t, "若真者\n\t吾有一數曰「真」也\n云云")

	// Inner names are gone after the body
	checkSemanticError(t, "若真者\n\t吾有一數曰「乙」其值二也\n云云\n云乙", errUndeclared)
	checkSemanticError(t, "恆為是\n\t吾有一數曰「乙」也\n\t乃止\n云云\n云乙", errUndeclared)
	checkSemanticError(t, "有術曰「甲」必先得一數曰「乙」\n\t乃得乙\n之術也\n云乙", errUndeclared)
	checkSemanticError(t, "若真者\n\t吾有一數曰「乙」也\n若非\n\t云乙\n云云", errUndeclared)
}

func TestAnalyzeFunctions(t *testing.T) {
	// Recursion
	checkAnalyze(t, "有術曰「甲」必先得一數曰「乙」\n\t乃得施甲以乙\n之術也")
	// Called after the declaration
	checkAnalyze(t, "有術曰「甲」\n\t乃得一\n之術也\n云施甲")

	checkSemanticError(t, "吾有一數曰「甲」其值一也\n施甲", errNotCallable)
	checkSemanticError(t, "施「真」", errNotCallable)
	checkSemanticError(t, "有術曰「甲」\n之術也\n甲其值一也", errNotAssignable)
	checkSemanticError(t, "真其值假也", errNotAssignable)
}

func TestAnalyzeBuiltinArguments(t *testing.T) {
	checkAnalyze(t, "施「輸出」以一、二、三")
	checkAnalyze(t, "施「長度」以一")
	checkAnalyze(t, "施「長度」")
	checkSemanticError(t, "施「長度」以一、二", errTooManyArguments)
	checkSemanticError(t, "施「轉換」以「1」、「2」", errTooManyArguments)
	checkSemanticError(t, "云施「輸入」以一", errTooManyArguments)

	// A local function may take the name of a builtin
	checkAnalyze(t, "若真者\n\t有術曰「長度」必先得一數曰「甲」、一數曰「乙」\n\t\t乃得甲\n\t之術也\n\t施「長度」以一、二\n云云")
}

func TestSymbolListing(t *testing.T) {
	program, err := Parse(Tokenize("吾有一數曰「甲」其值三也\n有術曰「乙」必先得一言曰「丙」\n\t云丙\n之術也"))
	if err != nil {
		t.Fatal(err)
	}
	expected := "[variable] 甲 一數 depth 0 (1:6)\n" +
		"[function] 乙 函數 depth 0 (2:4)\n" +
		"[parameter] 丙 一言 depth 1 (2:13)\n"
	listing, err := SymbolListing(program)
	if err != nil {
		t.Fatal(err)
	}
	if listing != expected {
		t.Errorf("\nExpected:\n----\n%s----\nFound:\n----\n%s----", expected, listing)
	}

	program, _ = Parse(Tokenize("云甲"))
	if _, err := SymbolListing(program); !errors.Is(err, errUndeclared) {
		t.Errorf("Expected %v instead of %v", errUndeclared, err)
	}
}

func TestAnalyzeResolves(t *testing.T) {
	program, err := analyze(t, "若一者\n\t吾有一數曰「真」其值二也\n\t云真\n云云\n云真")
	if err != nil {
		t.Fatal(err)
	}

	inner := program.Stmts[0].(*ifStmt).thenBranch[1].(*printStmt).value.(*variableExpr)
	if inner.resolved == nil || inner.resolved.builtin || inner.resolved.depth != 1 {
		t.Errorf("Inner 真 should resolve to the local variable instead of %+v", inner.resolved)
	}

	outer := program.Stmts[1].(*printStmt).value.(*variableExpr)
	if outer.resolved == nil || !outer.resolved.builtin {
		t.Errorf("Outer 真 should resolve to the builtin instead of %+v", outer.resolved)
	}
}

func TestAnalyzeErrorPosition(t *testing.T) {
	_, err := analyze(t, "若真者\n\t云甲\n云云")
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("Expected a compile error instead of %v", err)
	}
	if compileErr.Line != 2 || compileErr.Column != 3 || compileErr.Context != "scope 1" {
		t.Errorf("Unexpected error position %d:%d in %q", compileErr.Line, compileErr.Column, compileErr.Context)
	}
}

func TestAnalyzeResets(t *testing.T) {
	program, err := Parse(Tokenize("吾有一數曰「甲」也"))
	if err != nil {
		t.Fatal(err)
	}
	if err := Analyze(program); err != nil {
		t.Fatal(err)
	}
	// A second pass starts from an empty table
	if err := Analyze(program); err != nil {
		t.Errorf("Analyzing twice should not redeclare: %v", err)
	}
}
