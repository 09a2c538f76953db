package keycalc

import "strconv"

// Token is a single key press.
type Token struct {
	// Kind is the class of key.
	Kind Kind
	// Digit is the digit for KindDigit tokens.
	Digit byte
	// Op is the operator for KindBinary tokens.
	Op Binary
	// Fn is the function for KindUnary tokens.
	Fn Unary
}

// Kind is a class of key.
type Kind int8

const (
	KindNone Kind = iota
	// KindDigit is one of 0 through 9.
	KindDigit
	// KindPoint is the decimal point.
	KindPoint
	// KindBinary is a two-operand operator key.
	KindBinary
	// KindUnary is a function key, including the postfix x².
	KindUnary
	// KindPi is the constant π.
	KindPi
	// KindNegate toggles the sign of the expression.
	KindNegate
	// KindClear resets everything.
	KindClear
	// KindBackspace removes the last character of the expression.
	KindBackspace
	// KindEquals evaluates the expression.
	KindEquals
	// KindOpen and KindClose are parentheses. They are accepted but do nothing.
	KindOpen
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindDigit:
		return "Digit"
	case KindPoint:
		return "Point"
	case KindBinary:
		return "Binary"
	case KindUnary:
		return "Unary"
	case KindPi:
		return "Pi"
	case KindNegate:
		return "Negate"
	case KindClear:
		return "Clear"
	case KindBackspace:
		return "Backspace"
	case KindEquals:
		return "Equals"
	case KindOpen:
		return "Open"
	case KindClose:
		return "Close"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Binary is a binary operator.
type Binary int8

const (
	BinaryNone Binary = iota
	Add
	Sub
	Mul
	Div
	Pow
)

// Glyph returns the text the operator contributes to an expression.
func (op Binary) Glyph() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	}
	return ""
}

// String returns the key label of the operator.
func (op Binary) String() string {
	if op == Pow {
		return "x^y"
	}
	if op == BinaryNone {
		return "none"
	}
	return op.Glyph()
}

// Unary is a function key.
type Unary int8

const (
	UnaryNone Unary = iota
	Sin
	Cos
	Tan
	Sqrt
	Log
	Ln
	Exp
	Recip
	Square
)

var unarynames = [...]string{
	UnaryNone: "none",
	Sin:       "sin",
	Cos:       "cos",
	Tan:       "tan",
	Sqrt:      "√",
	Log:       "log",
	Ln:        "ln",
	Exp:       "exp",
	Recip:     "1/x",
	Square:    "x²",
}

// String returns the key label of the function.
func (fn Unary) String() string {
	if fn < 0 || int(fn) >= len(unarynames) {
		return "Unary(" + strconv.Itoa(int(fn)) + ")"
	}
	return unarynames[fn]
}

// String returns the canonical key label of the token.
func (t Token) String() string {
	switch t.Kind {
	case KindDigit:
		return string(rune('0' + t.Digit))
	case KindPoint:
		return "."
	case KindBinary:
		return t.Op.String()
	case KindUnary:
		return t.Fn.String()
	case KindPi:
		return "π"
	case KindNegate:
		return "+/-"
	case KindClear:
		return "C"
	case KindBackspace:
		return "←"
	case KindEquals:
		return "="
	case KindOpen:
		return "("
	case KindClose:
		return ")"
	}
	return t.Kind.String()
}

// Shortcuts for building tokens.

// DigitKey returns the token for the digit d, which must be in 0 through 9.
func DigitKey(d byte) Token {
	if d > 9 {
		panic("keycalc: digit out of range: " + strconv.Itoa(int(d)))
	}
	return Token{Kind: KindDigit, Digit: d}
}

// OpKey returns the token for a binary operator.
func OpKey(op Binary) Token {
	return Token{Kind: KindBinary, Op: op}
}

// FuncKey returns the token for a function key.
func FuncKey(fn Unary) Token {
	return Token{Kind: KindUnary, Fn: fn}
}

var (
	PointKey     = Token{Kind: KindPoint}
	PiKey        = Token{Kind: KindPi}
	NegateKey    = Token{Kind: KindNegate}
	ClearKey     = Token{Kind: KindClear}
	BackspaceKey = Token{Kind: KindBackspace}
	EqualsKey    = Token{Kind: KindEquals}
	OpenKey      = Token{Kind: KindOpen}
	CloseKey     = Token{Kind: KindClose}
)
