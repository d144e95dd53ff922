package internal

import "fmt"

// tokenType Holds a token kind
type tokenType int

const (
	tkEOF tokenType = iota
	tkUnknown

	// Declarations.
	// 吾有, 曰, 其值, 也
	tkDeclare
	tkNamed
	tkValue
	tkEnd

	// Types.
	// 一數, 一言, 一列
	tkNumberType
	tkStringType
	tkListType

	// Functions.
	// 有術, 欲行是術, 必先得, 乃得, 是謂, 之術也
	tkFunction
	tkInvoke
	tkParams
	tkReturn
	tkFunctionName
	tkFunctionEnd

	// Control flow.
	// 若, 者, 若非, 云云, 恆為是, 乃止
	tkIf
	tkThen
	tkElse
	tkBlockEnd
	tkLoop
	tkBreak

	// Output.
	// 云
	tkPrint

	// Application.
	// 施, 於, 名之, 以
	tkApply
	tkTo
	tkNameIt
	tkWith

	// Operators.
	// 加, 減, 乘, 除, 大於, 小於, 等於
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkGreater
	tkLess
	tkEqual

	// Punctuation.
	// 「, 」, 、
	tkOpenQuote
	tkCloseQuote
	tkComma

	// Literals.
	tkNumber
	tkString
	tkIdentifier
)

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkUnknown:      "UNKNOWN",
	tkDeclare:      "DECLARE",
	tkNamed:        "NAMED",
	tkValue:        "VALUE",
	tkEnd:          "END",
	tkNumberType:   "NUMBER_TYPE",
	tkStringType:   "STRING_TYPE",
	tkListType:     "LIST_TYPE",
	tkFunction:     "FUNCTION",
	tkInvoke:       "INVOKE",
	tkParams:       "PARAMS",
	tkReturn:       "RETURN",
	tkFunctionName: "FUNCTION_NAME",
	tkFunctionEnd:  "FUNCTION_END",
	tkIf:           "IF",
	tkThen:         "THEN",
	tkElse:         "ELSE",
	tkBlockEnd:     "BLOCK_END",
	tkLoop:         "LOOP",
	tkBreak:        "BREAK",
	tkPrint:        "PRINT",
	tkApply:        "APPLY",
	tkTo:           "TO",
	tkNameIt:       "NAME_IT",
	tkWith:         "WITH",
	tkPlus:         "PLUS",
	tkMinus:        "MINUS",
	tkStar:         "STAR",
	tkSlash:        "SLASH",
	tkGreater:      "GREATER",
	tkLess:         "LESS",
	tkEqual:        "EQUAL",
	tkOpenQuote:    "OPEN_QUOTE",
	tkCloseQuote:   "CLOSE_QUOTE",
	tkComma:        "COMMA",
	tkNumber:       "NUMBER",
	tkString:       "STRING",
	tkIdentifier:   "IDENTIFIER",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

func (t tokenType) isType() bool {
	return t == tkNumberType || t == tkStringType || t == tkListType
}

type token struct {
	token  tokenType
	lexeme string
	line   int
	column int
}

func (t token) String() string {
	return fmt.Sprintf("[%s] '%s' (%d:%d)", t.token, t.lexeme, t.line, t.column)
}
