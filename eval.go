package keycalc

import (
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// equals evaluates the expression. An empty expression leaves everything as
// it is. Otherwise all pending operator state is consumed, and the next digit
// starts a new entry.
func (c *Calculator) equals() {
	expr := c.st.Expression
	if expr == "" {
		return
	}
	r, show, rule := c.evaluate(expr)
	c.log.Debug("evaluate", slog.String("rule", rule), slog.String("expression", expr), slog.String("result", r.String()), slog.Any("err", r.Err))
	c.st = ParseState{Expression: show, AwaitingNewOperand: true}
	c.res = r
}

// evaluate reduces a non-empty expression using the parse state. It returns
// the result, the expression to display afterward, and a name for the rule
// that matched. The first matching rule wins:
//
//	1. n π, a plain literal times π.
//	2. x^2, a square.
//	3. a^b, a power.
//	4. 1/(x), a reciprocal.
//	5. f(x), a function whose parenthesis is still open.
//	6. a op b, the pending binary operator.
//	7. a single literal.
//
// Failures other than the reciprocal of zero display an empty expression.
func (c *Calculator) evaluate(expr string) (Result, string, string) {
	st := &c.st
	if num, ok := strings.CutSuffix(expr, "π"); ok && num != "" && strings.Trim(num, "0123456789.") == "" {
		x, err := decimal(num)
		if err != nil {
			return Failure(err), "", "pi-product"
		}
		return Number(x * math.Pi), expr, "pi-product"
	}

	if base, ok := strings.CutSuffix(expr, "^2"); ok {
		x, err := literal(base)
		if err != nil {
			return Failure(err), "", "square"
		}
		return c.call(Square, x), expr, "square"
	}

	recip := strings.HasPrefix(expr, "1/(") && strings.HasSuffix(expr, ")")
	if !recip && strings.Count(expr, "^") == 1 {
		a, b, _ := strings.Cut(expr, "^")
		x, err := literal(a)
		if err != nil {
			return Failure(err), "", "power"
		}
		y, err := literal(b)
		if err != nil {
			return Failure(err), "", "power"
		}
		r, err := power(c.prec, x, y)
		if err != nil {
			return Failure(err), "", "power"
		}
		return Number(r), expr, "power"
	}

	if recip {
		x, err := literal(expr[len("1/(") : len(expr)-1])
		if err != nil {
			return Failure(err), "", "reciprocal"
		}
		r := c.call(Recip, x)
		return r, expr, "reciprocal"
	}

	if st.leading() {
		x := 0.0
		if st.PendingUnaryOperand != "" {
			var err error
			x, err = literal(st.PendingUnaryOperand)
			if err != nil {
				return Failure(err), "", "function"
			}
		}
		r := c.call(st.PendingUnary, x)
		if r.Kind == ResultError && !errors.Is(r.Err, ErrDivideByZero) {
			return r, "", "function"
		}
		return r, wrap(st.PendingUnary, FormatNumber(x)), "function"
	}

	if st.PendingBinary != BinaryNone {
		a, b, ok := split(expr, st.PendingBinary.Glyph())
		if !ok {
			x, err := literal(expr)
			if err != nil {
				return Failure(err), "", "binary"
			}
			return Number(x), expr, "binary"
		}
		x, err := literal(a)
		if err != nil {
			return Failure(err), "", "binary"
		}
		y, err := literal(b)
		if err != nil {
			return Failure(err), "", "binary"
		}
		r, err := c.arith(st.PendingBinary, x, y)
		if err != nil {
			return Failure(err), "", "binary"
		}
		return Number(r), expr, "binary"
	}

	x, err := literal(expr)
	if err != nil {
		return Failure(err), "", "literal"
	}
	return Number(x), expr, "literal"
}

// call applies a function key's function to x.
func (c *Calculator) call(fn Unary, x float64) Result {
	if fn == Tan && c.asymptote(x) {
		return Infinity(1)
	}
	f := unaries[fn]
	if f == nil {
		return Failure(&DomainError{X: x, Func: fn.String()})
	}
	r, err := f(c.prec, x)
	if err != nil {
		return Failure(err)
	}
	return Number(r)
}

// asymptote returns whether x degrees is within tolerance of 90 modulo 180.
func (c *Calculator) asymptote(x float64) bool {
	m := math.Mod(x, 180)
	if m < 0 {
		m += 180
	}
	return math.Abs(m-90) < c.tol
}

// arith applies a binary operator.
func (c *Calculator) arith(op Binary, x, y float64) (float64, error) {
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mul:
		return x * y, nil
	case Div:
		if y == 0 {
			return 0, ErrDivideByZero
		}
		return x / y, nil
	case Pow:
		return power(c.prec, x, y)
	}
	panic("keycalc: invalid binary operator " + op.String())
}

// split divides expr around its only occurrence of glyph, not counting a
// sign at the very start. The result is false if there is not exactly one.
func split(expr, glyph string) (a, b string, ok bool) {
	_, sz := utf8.DecodeRuneInString(expr)
	rest := expr[sz:]
	if strings.Count(rest, glyph) != 1 {
		return "", "", false
	}
	k := sz + strings.Index(rest, glyph)
	return expr[:k], expr[k+len(glyph):], true
}

// literal parses an operand: a decimal number, π, or a decimal number
// followed by π meaning their product, each optionally preceded by a minus.
func literal(s string) (float64, error) {
	t := strings.TrimPrefix(s, "-")
	sign := 1.0
	if len(t) != len(s) {
		sign = -1
	}
	if t == "π" {
		return sign * math.Pi, nil
	}
	if num, ok := strings.CutSuffix(t, "π"); ok {
		x, err := decimal(num)
		if err != nil {
			return 0, &NumberError{Text: s}
		}
		return sign * x * math.Pi, nil
	}
	x, err := decimal(t)
	if err != nil {
		return 0, &NumberError{Text: s}
	}
	return sign * x, nil
}

// decimal parses unsigned decimal digits with at most one point.
func decimal(s string) (float64, error) {
	if s == "" || s == "." || strings.Count(s, ".") > 1 || strings.Trim(s, "0123456789.") != "" {
		return 0, &NumberError{Text: s}
	}
	// Only range errors remain, and ParseFloat gives ±Inf for those.
	x, _ := strconv.ParseFloat(s, 64)
	return x, nil
}
