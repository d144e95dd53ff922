package internal

import (
	"sort"
	"unicode/utf8"
)

var keywords = map[string]tokenType{
	"吾有": tkDeclare,
	"曰":  tkNamed,
	"其值": tkValue,
	"也":  tkEnd,

	"一數": tkNumberType,
	"一言": tkStringType,
	"一列": tkListType,

	"有術":   tkFunction,
	"欲行是術": tkInvoke,
	"必先得":  tkParams,
	"乃得":   tkReturn,
	"是謂":   tkFunctionName,
	"之術也":  tkFunctionEnd,

	"若":  tkIf,
	"者":  tkThen,
	"若非": tkElse,

	"云":  tkPrint,
	"云云": tkBlockEnd,

	"恆為是": tkLoop,
	"乃止":  tkBreak,

	"施":  tkApply,
	"於":  tkTo,
	"名之": tkNameIt,
	"以":  tkWith,

	"加": tkPlus,
	"減": tkMinus,
	"乘": tkStar,
	"除": tkSlash,

	"大於": tkGreater,
	"小於": tkLess,
	"等於": tkEqual,
}

// maxKeywordLength is the longest keyword in code points.
const maxKeywordLength = 4

var numerals = map[string]int{
	"零": 0, "〇": 0,
	"一": 1, "壹": 1,
	"二": 2, "貳": 2, "兩": 2,
	"三": 3, "參": 3, "叁": 3,
	"四": 4, "肆": 4,
	"五": 5, "伍": 5,
	"六": 6, "陸": 6,
	"七": 7, "柒": 7,
	"八": 8, "捌": 8,
	"九": 9, "玖": 9,
	"十": 10, "拾": 10,
	"百": 100, "佰": 100,
	"千": 1000, "仟": 1000,
	"萬": 10000,
}

func isKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}

// keywordType returns tkIdentifier for anything that is not a keyword.
func keywordType(text string) tokenType {
	if tk, ok := keywords[text]; ok {
		return tk
	}
	return tkIdentifier
}

// Keywords returns every keyword spelling, longest first.
func Keywords() []string {
	list := make([]string, 0, len(keywords))
	for k := range keywords {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(list[i]), utf8.RuneCountInString(list[j])
		if li != lj {
			return li > lj
		}
		return list[i] < list[j]
	})
	return list
}

func isNumeralGlyph(text string) bool {
	if _, ok := numerals[text]; ok {
		return true
	}
	_, ok := compositeNumeral(text)
	return ok
}

// numeralValue converts a run of numeral glyphs to its integer value.
func numeralValue(text string) (int, error) {
	if value, ok := numerals[text]; ok {
		return value, nil
	}
	if value, ok := compositeNumeral(text); ok {
		return value, nil
	}
	return 0, &CompileError{
		Kind:   ErrLexicalAmbiguity,
		Err:    errInvalidNumeral,
		Lexeme: text,
	}
}

// compositeNumeral reads glyphs left to right keeping a pending digit and a
// running total. A scale glyph multiplies the pending digit (1 when none) into
// the total. Literals that stack scales, like 二十萬, come out wrong (10020):
// the total is never multiplied by a later, larger scale.
func compositeNumeral(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	pending, total := 0, 0
	for _, r := range text {
		value, ok := numerals[string(r)]
		if !ok {
			return 0, false
		}
		if value >= 10 {
			if pending == 0 {
				pending = 1
			}
			total += pending * value
			pending = 0
		} else {
			pending = value
		}
	}
	return total + pending, true
}
