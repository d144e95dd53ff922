package internal

import (
	"unicode"
)

type lexer struct {
	source  []rune
	start   int
	current int

	line        int
	column      int
	startLine   int
	startColumn int

	tokens []token
}

func newLexer(source string) *lexer {
	return &lexer{
		source: []rune(source),
		line:   1,
		column: 1,
	}
}

// Tokenize splits source into tokens. It never fails: text it cannot
// classify becomes tkUnknown, and the result always ends with one tkEOF.
func Tokenize(source string) []token {
	return newLexer(source).scan()
}

func (l *lexer) scan() []token {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.startColumn = l.column
		l.scanToken()
	}
	l.start = l.current
	l.startLine = l.line
	l.startColumn = l.column
	l.emit(tkEOF, "")
	return l.tokens
}

func (l *lexer) scanToken() {
	c := l.peek()
	switch {
	case unicode.IsSpace(c):
		l.advance()
	case c == '/' && l.peekNext() == '/':
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
	case c == '「':
		l.string()
	case c == '」':
		l.advance()
		l.emit(tkCloseQuote, "」")
	case c == '、':
		l.advance()
		l.emit(tkComma, "、")
	case isDigit(c):
		l.number()
	case unicode.Is(unicode.Han, c):
		l.han()
	case isAlpha(c):
		l.identifier()
	default:
		l.advance()
		l.emit(tkUnknown, string(c))
	}
}

// string reads a 「」 literal verbatim. An unclosed literal runs to the end
// of the source.
func (l *lexer) string() {
	l.advance()
	for !l.isAtEnd() && l.peek() != '」' {
		l.advance()
	}
	literal := string(l.source[l.start+1 : l.current])
	if !l.isAtEnd() {
		l.advance()
	}
	l.emit(tkString, literal)
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	l.emit(tkNumber, string(l.source[l.start:l.current]))
}

// han matches the longest keyword starting here. Otherwise a single glyph is
// consumed as a numeral or an identifier.
func (l *lexer) han() {
	for length := maxKeywordLength; length > 0; length-- {
		if l.current+length > len(l.source) {
			continue
		}
		candidate := string(l.source[l.current : l.current+length])
		if isKeyword(candidate) {
			for i := 0; i < length; i++ {
				l.advance()
			}
			l.emit(keywordType(candidate), candidate)
			return
		}
	}

	glyph := string(l.advance())
	if isNumeralGlyph(glyph) {
		l.emit(tkNumber, glyph)
	} else {
		l.emit(tkIdentifier, glyph)
	}
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	l.emit(tkIdentifier, string(l.source[l.start:l.current]))
}

func (l *lexer) advance() rune {
	c := l.source[l.current]
	l.current++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(tk tokenType, lexeme string) {
	l.tokens = append(l.tokens, token{
		token:  tk,
		lexeme: lexeme,
		line:   l.startLine,
		column: l.startColumn,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
