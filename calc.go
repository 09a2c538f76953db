package keycalc

import (
	"io"
	"log/slog"
)

// ParseState is the in-progress entry of a Calculator.
type ParseState struct {
	// Expression is the visible expression line.
	Expression string
	// PendingUnary is the function whose operand is being entered, if any.
	PendingUnary Unary
	// UnaryIsLeading is true while PendingUnary's parenthesis is open.
	UnaryIsLeading bool
	// PendingUnaryOperand is the operand text typed inside the parentheses.
	PendingUnaryOperand string
	// PendingBinary is the most recent binary operator, if any.
	PendingBinary Binary
	// AwaitingNewOperand is true after an operator, function, or evaluation,
	// until the next digit starts a new operand.
	AwaitingNewOperand bool
}

// leading returns whether digits go to the pending unary operand.
func (st *ParseState) leading() bool {
	return st.PendingUnary != UnaryNone && st.UnaryIsLeading
}

// dropPending clears operator state but keeps the expression.
func (st *ParseState) dropPending() {
	st.PendingUnary = UnaryNone
	st.UnaryIsLeading = false
	st.PendingUnaryOperand = ""
	st.PendingBinary = BinaryNone
}

// initial is the state after a clear.
var initial = ParseState{Expression: "0", AwaitingNewOperand: true}

// View is what a presentation shows after each key.
type View struct {
	// Expression is the expression line.
	Expression string
	// Result is the result line.
	Result string
	// Alert is set when the key was accepted but did nothing, e.g. a
	// parenthesis or a second decimal point. Presentations may beep.
	Alert bool
}

// Calculator consumes keys and maintains the expression and result lines.
// It is not safe to use a Calculator concurrently.
type Calculator struct {
	st   ParseState
	res  Result
	prec uint
	tol  float64
	log  *slog.Logger
}

// Option is an option used when creating a Calculator.
type Option interface {
	calcOption()
}

type (
	precopt uint
	tolopt  float64
	logopt  struct{ l *slog.Logger }
)

func (precopt) calcOption() {}
func (tolopt) calcOption()  {}
func (logopt) calcOption()  {}

// Prec sets the precision in bits of exp, ln, log, √, and powers, which are
// computed on big.Float before rounding to float64. The default is 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

// Tolerance sets how close, in degrees, the argument of tan must be to an
// odd multiple of 90 to give an infinite result. The default is 1e-9.
func Tolerance(tol float64) Option {
	return tolopt(tol)
}

// Logger sets the logger that receives debug records for each key and
// evaluation. The default discards everything.
func Logger(l *slog.Logger) Option {
	return logopt{l}
}

// New creates a calculator showing "0" with an empty result line.
func New(opts ...Option) *Calculator {
	c := Calculator{
		st:   initial,
		prec: 64,
		tol:  1e-9,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			c.prec = uint(opt)
		case tolopt:
			c.tol = float64(opt)
		case logopt:
			c.log = opt.l
		default:
			panic("keycalc: unknown option type")
		}
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &c
}

// Apply processes one key and returns the updated lines. Keys that do
// nothing, including parentheses and tokens not built by this package, set
// Alert and leave the state unchanged.
func (c *Calculator) Apply(tok Token) View {
	ok := true
	switch tok.Kind {
	case KindDigit:
		ok = tok.Digit <= 9 && c.enter(string(rune('0'+tok.Digit)))
	case KindPoint:
		ok = c.enter(".")
	case KindUnary:
		if ok = unaries[tok.Fn] != nil; ok {
			c.unary(tok.Fn)
		}
	case KindPi:
		c.pi()
	case KindNegate:
		c.negate()
	case KindClear:
		c.st = initial
		c.res = Result{}
	case KindBackspace:
		c.backspace()
	case KindBinary:
		if ok = tok.Op.Glyph() != ""; ok {
			c.binary(tok.Op)
		}
	case KindEquals:
		c.equals()
	default:
		// Parentheses and anything unknown.
		ok = false
	}
	c.log.Debug("key", slog.String("token", tok.String()), slog.String("expression", c.st.Expression), slog.Bool("ignored", !ok))
	v := c.View()
	v.Alert = !ok
	return v
}

// Press lexes a string of keys and applies each in turn. If the string
// contains text that is not a key, no keys are applied.
func (c *Calculator) Press(keys string) (View, error) {
	toks, err := Lex(keys)
	if err != nil {
		return c.View(), err
	}
	v := c.View()
	for _, tok := range toks {
		v = c.Apply(tok)
	}
	return v, nil
}

// View returns the current lines.
func (c *Calculator) View() View {
	return View{Expression: c.st.Expression, Result: c.res.String()}
}

// State returns a copy of the current parse state.
func (c *Calculator) State() ParseState {
	return c.st
}

// Result returns the result shown on the result line. It is the zero Result
// if the line is blank.
func (c *Calculator) Result() Result {
	return c.res
}

// EvalString is a shortcut to press a string of keys on a new calculator,
// followed by = if the keys do not end with it, and return the result.
func EvalString(keys string, opts ...Option) (Result, error) {
	toks, err := Lex(keys)
	if err != nil {
		return Result{}, err
	}
	c := New(opts...)
	for _, tok := range toks {
		c.Apply(tok)
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != KindEquals {
		c.Apply(EqualsKey)
	}
	return c.Result(), nil
}
