package keycalc

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// enter handles a digit or the decimal point. It returns false if the key was
// ignored, which happens only for a second point in the same operand.
func (c *Calculator) enter(key string) bool {
	st := &c.st
	switch {
	case st.leading():
		if st.AwaitingNewOperand {
			st.PendingUnaryOperand = startOperand(key)
		} else {
			v, ok := extend(st.PendingUnaryOperand, key)
			if !ok {
				return false
			}
			st.PendingUnaryOperand = v
		}
		st.Expression = wrap(st.PendingUnary, st.PendingUnaryOperand)
	case st.AwaitingNewOperand:
		if endsWithOperator(st.Expression) {
			st.Expression += startOperand(key)
		} else {
			st.Expression = startOperand(key)
		}
	default:
		seg := segment(st.Expression)
		v, ok := extend(seg, key)
		if !ok {
			return false
		}
		st.Expression = st.Expression[:len(st.Expression)-len(seg)] + v
	}
	st.AwaitingNewOperand = false
	c.res = Result{}
	return true
}

// startOperand is the text of an operand that begins with key.
func startOperand(key string) string {
	if key == "." {
		return "0."
	}
	return key
}

// extend appends key to an operand. A lone zero is replaced by a digit, and a
// point on an empty operand gets a leading zero. The result is false if the
// key is a point and the operand already has one.
func extend(operand, key string) (string, bool) {
	switch {
	case key == ".":
		if strings.Contains(operand, ".") {
			return operand, false
		}
		if operand == "" {
			return "0.", true
		}
	case operand == "0":
		return key, true
	}
	return operand + key, true
}

// operators is the set of characters that end an operand.
const operators = "+-*/^"

func endsWithOperator(expr string) bool {
	return expr != "" && strings.IndexByte(operators, expr[len(expr)-1]) >= 0
}

// segment returns the trailing operand of expr: everything after the last
// operator, not counting a sign at the very start.
func segment(expr string) string {
	if expr == "" {
		return ""
	}
	_, sz := utf8.DecodeRuneInString(expr)
	k := strings.LastIndexAny(expr[sz:], operators)
	if k < 0 {
		if strings.IndexByte(operators, expr[0]) >= 0 {
			return expr[1:]
		}
		return expr
	}
	return expr[sz+k+1:]
}

// wrap renders a function applied to operand text.
func wrap(fn Unary, operand string) string {
	if fn == Recip {
		return "1/(" + operand + ")"
	}
	return fn.String() + "(" + operand + ")"
}

// unary handles a function key. Any pending operator is abandoned.
func (c *Calculator) unary(fn Unary) {
	st := &c.st
	cur := st.Expression
	if cur == "" {
		cur = "0"
	}
	st.dropPending()
	switch fn {
	case Square:
		st.Expression = cur + "^2"
	case Recip:
		st.Expression = wrap(Recip, cur)
		st.PendingUnary = Recip
		st.UnaryIsLeading = true
		st.PendingUnaryOperand = cur
	default:
		st.Expression = wrap(fn, "")
		st.PendingUnary = fn
		st.UnaryIsLeading = true
	}
	st.AwaitingNewOperand = true
	c.res = Result{}
}

// pi appends the π glyph, to the unary operand if one is open.
func (c *Calculator) pi() {
	st := &c.st
	if st.leading() {
		if st.AwaitingNewOperand || st.PendingUnaryOperand == "0" {
			st.PendingUnaryOperand = "π"
		} else {
			st.PendingUnaryOperand += "π"
		}
		st.Expression = wrap(st.PendingUnary, st.PendingUnaryOperand)
	} else if st.Expression == "" || st.Expression == "0" {
		st.Expression = "π"
	} else {
		st.Expression += "π"
	}
	st.AwaitingNewOperand = false
	c.res = Result{}
}

// negate toggles a leading minus on the whole expression.
func (c *Calculator) negate() {
	st := &c.st
	switch {
	case st.Expression == "", st.Expression == "0":
		st.Expression = "-"
	case strings.HasPrefix(st.Expression, "-"):
		st.Expression = st.Expression[1:]
	default:
		st.Expression = "-" + st.Expression
	}
	st.AwaitingNewOperand = false
	c.res = Result{}
}

// backspace removes the last character of the expression. The result line
// is kept.
func (c *Calculator) backspace() {
	st := &c.st
	if st.Expression == "" {
		return
	}
	_, sz := utf8.DecodeLastRuneInString(st.Expression)
	st.Expression = st.Expression[:len(st.Expression)-sz]
}

// binary handles an operator key. An open function is committed first: its
// operand is evaluated and the function applied, and the value replaces the
// function in the expression. For x^y the operand itself becomes the base
// instead.
func (c *Calculator) binary(op Binary) {
	st := &c.st
	if st.leading() {
		fn := st.PendingUnary
		x, err := literal(st.PendingUnaryOperand)
		if err != nil {
			c.fail("commit", err)
			return
		}
		if op == Pow {
			st.Expression = FormatNumber(x) + op.Glyph()
		} else {
			r := c.call(fn, x)
			if r.Kind != ResultNumber {
				c.fail("commit", commitErr(r, fn, x))
				return
			}
			st.Expression = FormatNumber(r.Value) + op.Glyph()
		}
		st.PendingUnary = UnaryNone
		st.UnaryIsLeading = false
		st.PendingUnaryOperand = ""
	} else {
		st.Expression += op.Glyph()
	}
	st.PendingBinary = op
	st.AwaitingNewOperand = true
	c.res = Result{}
}

// commitErr is the error for a committed function whose value is not finite.
func commitErr(r Result, fn Unary, x float64) error {
	if r.Err != nil {
		return r.Err
	}
	return &DomainError{X: x, Func: fn.String()}
}

// fail shows Error and resets everything so the next key starts a new entry.
func (c *Calculator) fail(where string, err error) {
	c.log.Debug("reset", slog.String("at", where), slog.String("expression", c.st.Expression), slog.Any("err", err))
	c.st = ParseState{AwaitingNewOperand: true}
	c.res = Failure(err)
}
