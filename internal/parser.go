package internal

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Program is the root of a parsed source file
type Program struct {
	Stmts []stmt
}

type callStack struct {
	function  string
	loopCount int
}

// parser stores parser data
type parser struct {
	tokens  []token
	current int

	cls      []*callStack
	contexts []string
}

// Parse builds the program tree. It stops at the first malformed statement
// and returns a *CompileError of kind ErrSyntax.
func Parse(tokens []token) (program *Program, err error) {
	p := &parser{tokens: append([]token(nil), tokens...)}
	if len(p.tokens) == 0 || p.tokens[len(p.tokens)-1].token != tkEOF {
		eof := token{token: tkEOF, line: 1, column: 1}
		if len(p.tokens) > 0 {
			last := p.tokens[len(p.tokens)-1]
			eof.line, eof.column = last.line, last.column
		}
		p.tokens = append(p.tokens, eof)
	}

	defer func() {
		if r := recover(); r != nil {
			compileErr, ok := r.(*CompileError)
			if !ok {
				panic(r)
			}
			program, err = nil, compileErr
		}
	}()
	return p.parse(), nil
}

func (p *parser) getParsingContext() *callStack {
	return p.cls[len(p.cls)-1]
}

func (p *parser) enterFunction(name string) {
	p.cls = append(p.cls, &callStack{
		function:  name,
		loopCount: 0,
	})
}

func (p *parser) leaveFunction() {
	p.cls = p.cls[:len(p.cls)-1]
}

func (p *parser) enterLoop() {
	pc := p.getParsingContext()
	pc.loopCount++
}

func (p *parser) leaveLoop() {
	pc := p.getParsingContext()
	pc.loopCount--
}

func (p *parser) insideLoop() bool {
	return p.getParsingContext().loopCount != 0
}

// The bottom of the call stack is the top level of the program.
func (p *parser) insideFunction() bool {
	return len(p.cls) > 1
}

func (p *parser) pushContext(name string) {
	p.contexts = append(p.contexts, name)
}

func (p *parser) popContext() {
	p.contexts = p.contexts[:len(p.contexts)-1]
}

func (p *parser) context() string {
	if len(p.contexts) == 0 {
		return "program"
	}
	return p.contexts[len(p.contexts)-1]
}

func (p *parser) parse() *Program {
	p.enterFunction("")
	defer p.leaveFunction()

	program := &Program{}
	for !p.isAtEnd() {
		program.Stmts = append(program.Stmts, p.statement())
	}
	return program
}

func (p *parser) statement() stmt {
	if p.match(tkDeclare) {
		return p.varDecl()
	}
	if p.match(tkPrint) {
		return p.print()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkLoop) {
		return p.loop()
	}
	if p.match(tkFunction) {
		return p.fn()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkBreak) {
		return p.brk()
	}
	if p.check(tkApply) {
		return p.callStmt()
	}
	if p.check(tkIdentifier) {
		return p.assignment()
	}
	p.fatal(errUndefinedStmt, p.peek())
	return nil
}

func (p *parser) varDecl() stmt {
	p.pushContext("variable declaration")
	defer p.popContext()

	st := &varStmt{keyword: p.previous()}
	st.typ = p.consumeType()
	st.name = p.declaredName()
	if p.match(tkValue) {
		st.initializer = p.initializer(st.typ)
	}
	p.consume(tkEnd, errExpectedEnd)
	return st
}

func (p *parser) consumeType() *token {
	if p.peek().token.isType() {
		return p.advance()
	}
	p.fatal(errExpectedType, p.peek())
	return nil
}

// declaredName reads [名之] 曰 「name」 and returns the string token.
func (p *parser) declaredName() *token {
	p.match(tkNameIt)
	p.consume(tkNamed, errExpectedNamed)
	name := p.consume(tkString, errExpectedName)
	if strings.TrimSpace(name.lexeme) == "" {
		p.fatal(errEmptyName, name)
	}
	return name
}

// initializer reads the value after 其值. Lists take 、 separated elements;
// a single variable or call is kept as is since it may already be a list.
func (p *parser) initializer(typ *token) expr {
	start := p.peek()
	first := p.expression()
	elements := []expr{first}
	for p.match(tkComma) {
		if typ.token != tkListType {
			p.fatal(errListOutsideList, p.previous())
		}
		elements = append(elements, p.expression())
	}

	if typ.token != tkListType {
		return first
	}
	if len(elements) == 1 {
		switch first.(type) {
		case *variableExpr, *callExpr:
			return first
		}
	}
	return &listExpr{
		start:    start,
		elements: elements,
	}
}

func (p *parser) print() stmt {
	p.pushContext("print")
	defer p.popContext()

	st := &printStmt{
		keyword: p.previous(),
		value:   p.expression(),
	}
	p.match(tkEnd)
	return st
}

func (p *parser) ifStmt() stmt {
	p.pushContext("conditional")
	defer p.popContext()

	st := &ifStmt{
		keyword: p.previous(),
	}
	st.condition = p.expression()
	p.consume(tkThen, errExpectedThen)

	st.thenBranch = p.block(errExpectedBlockEnd, tkElse, tkBlockEnd)
	if p.match(tkElse) {
		st.elseBranch = p.block(errExpectedBlockEnd, tkBlockEnd)
	}
	p.consume(tkBlockEnd, errExpectedBlockEnd)

	return st
}

func (p *parser) loop() stmt {
	p.pushContext("loop")
	defer p.popContext()

	st := &loopStmt{
		keyword: p.previous(),
	}

	p.enterLoop()
	defer p.leaveLoop()
	st.body = p.block(errExpectedBlockEnd, tkBlockEnd)
	p.consume(tkBlockEnd, errExpectedBlockEnd)

	return st
}

func (p *parser) fn() stmt {
	p.pushContext("function declaration")
	defer p.popContext()

	st := &fnStmt{
		keyword: p.previous(),
	}
	st.name = p.declaredName()

	p.enterFunction(st.name.lexeme)
	defer p.leaveFunction()

	p.match(tkInvoke)
	if p.match(tkParams) {
		for {
			st.params = append(st.params, p.param())
			p.match(tkComma)
			if !p.peek().token.isType() {
				break
			}
		}
	}
	p.match(tkInvoke)

	st.body = p.block(errExpectedFunctionEnd, tkFunctionName, tkFunctionEnd)
	if p.match(tkFunctionName) && p.check(tkString) {
		name := p.advance()
		if name.lexeme != p.getParsingContext().function {
			p.fatal(errFunctionNameMismatch, name)
		}
	}
	p.consume(tkFunctionEnd, errExpectedFunctionEnd)

	return st
}

func (p *parser) param() *paramStmt {
	typ := p.consumeType()
	return &paramStmt{
		typ:  typ,
		name: p.declaredName(),
	}
}

// block parses statements up to one of the closing tokens, which is left
// for the caller to consume.
func (p *parser) block(unclosed error, closing ...tokenType) []stmt {
	var stmts []stmt
	for !p.check(closing...) {
		if p.isAtEnd() {
			p.fatal(unclosed, p.peek())
		}
		stmts = append(stmts, p.statement())
	}
	return stmts
}

func (p *parser) ret() stmt {
	p.pushContext("return")
	defer p.popContext()

	keyword := p.previous()
	if !p.insideFunction() {
		p.fatal(errOnlyAllowedInsideFunction, keyword)
	}
	st := &returnStmt{
		keyword: keyword,
	}
	if p.startsExpression() {
		st.value = p.expression()
	}
	p.match(tkEnd)
	return st
}

func (p *parser) brk() stmt {
	p.pushContext("break")
	defer p.popContext()

	keyword := p.previous()
	if !p.insideLoop() {
		p.fatal(errOnlyAllowedInsideLoop, keyword)
	}
	p.match(tkEnd)
	return &breakStmt{
		keyword: keyword,
	}
}

func (p *parser) callStmt() stmt {
	p.pushContext("call")
	defer p.popContext()

	st := &exprStmt{
		keyword:    p.peek(),
		expression: p.call(),
	}
	p.match(tkEnd)
	return st
}

func (p *parser) assignment() stmt {
	p.pushContext("assignment")
	defer p.popContext()

	name := p.advance()
	p.consume(tkValue, errExpectedValue)
	st := &assignStmt{
		name:  name,
		value: p.expression(),
	}
	p.match(tkEnd)
	return st
}

func (p *parser) startsExpression() bool {
	return p.check(tkNumber, tkString, tkIdentifier, tkApply)
}

func (p *parser) expression() expr {
	return p.comparison()
}

func (p *parser) comparison() expr {
	expr := p.addition()
	for p.match(tkGreater, tkLess, tkEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			operator: operator,
			left:     expr,
			op:       operatorTokens[operator.token],
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			operator: operator,
			left:     expr,
			op:       operatorTokens[operator.token],
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.primary()
	for p.match(tkStar, tkSlash) {
		operator := p.previous()
		right := p.primary()
		expr = &binaryExpr{
			operator: operator,
			left:     expr,
			op:       operatorTokens[operator.token],
			right:    right,
		}
	}
	return expr
}

func (p *parser) primary() expr {
	if p.check(tkNumber) {
		return p.numeral()
	}
	if p.match(tkString) {
		return &literalExpr{
			start: p.previous(),
			text:  p.previous().lexeme,
			kind:  tkString,
		}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.check(tkApply) {
		return p.call()
	}

	p.fatal(errExpectedExpression, p.peek())
	return nil
}

// numeral merges adjacent numeral glyphs, so 四十二 arrives as one literal
// with the text 42. Arabic numerals are kept verbatim.
func (p *parser) numeral() expr {
	start := p.advance()
	if isArabic(start) {
		return &literalExpr{
			start: start,
			text:  start.lexeme,
			kind:  tkNumber,
		}
	}

	glyphs := start.lexeme
	last := start
	for p.check(tkNumber) && !isArabic(p.peek()) && adjacent(last, p.peek()) {
		last = p.advance()
		glyphs += last.lexeme
	}

	value, err := numeralValue(glyphs)
	if err != nil {
		var compileErr *CompileError
		if errors.As(err, &compileErr) {
			compileErr.Context = p.context()
			panic(compileErr.at(start))
		}
		panic(err)
	}
	return &literalExpr{
		start: start,
		text:  strconv.Itoa(value),
		kind:  tkNumber,
	}
}

func (p *parser) call() expr {
	call := &callExpr{
		keyword: p.consume(tkApply, errExpectedCallee),
	}
	if !p.check(tkIdentifier, tkString) {
		p.fatal(errExpectedCallee, p.peek())
	}
	call.callee = p.advance()

	if p.match(tkTo, tkWith) {
		for {
			call.arguments = append(call.arguments, p.expression())
			if !p.match(tkComma, tkTo, tkWith) {
				break
			}
		}
	}
	return call
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}

	p.fatal(err, p.peek())
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	if p.check(tokens...) {
		p.current++
		return true
	}
	return false
}

func (p *parser) check(tokens ...tokenType) bool {
	current := p.peek().token
	for _, tk := range tokens {
		if current == tk {
			return true
		}
	}
	return false
}

func (p *parser) peek() *token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

func (p *parser) fatal(err error, tk *token) {
	panic(&CompileError{
		Kind:    ErrSyntax,
		Err:     err,
		Line:    tk.line,
		Column:  tk.column,
		Lexeme:  tk.lexeme,
		Context: p.context(),
	})
}

func isArabic(tk *token) bool {
	r, _ := utf8.DecodeRuneInString(tk.lexeme)
	return isDigit(r)
}

func adjacent(a, b *token) bool {
	return a.line == b.line && b.column == a.column+utf8.RuneCountInString(a.lexeme)
}
