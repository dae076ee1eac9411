package parse

// Operator precedences. Higher binds tighter.
const (
	AddPrecedence = 1 // + -
	MulPrecedence = 2 // * /
	PowPrecedence = 3 // ^
)

// Precedence returns the binding strength of a binary operator, or -1
// for anything else (including '(').
func Precedence(op rune) int {
	switch op {
	case '+', '-':
		return AddPrecedence
	case '*', '/':
		return MulPrecedence
	case '^':
		return PowPrecedence
	}
	return -1
}
