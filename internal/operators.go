package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opMul operator = "mul"
	opDiv operator = "div"
	opGt  operator = "gt"
	opLt  operator = "lt"
	opEq  operator = "eq"
)

var operatorTokens = map[tokenType]operator{
	tkPlus:    opAdd,
	tkMinus:   opSub,
	tkStar:    opMul,
	tkSlash:   opDiv,
	tkGreater: opGt,
	tkLess:    opLt,
	tkEqual:   opEq,
}

// csharp is the operator as written in the generated program.
func (op operator) csharp() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opGt:
		return ">"
	case opLt:
		return "<"
	case opEq:
		return "=="
	}
	return string(op)
}
