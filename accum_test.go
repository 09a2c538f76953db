package keycalc_test

import (
	"testing"

	"github.com/zephyrtronium/keycalc"
)

func TestEntry(t *testing.T) {
	cases := []struct {
		name string
		keys string
		expr string
	}{
		{"initial", "", "0"},
		{"digit", "5", "5"},
		{"leading-zero", "0 5", "5"},
		{"zeros", "0 0 0", "0"},
		{"digits", "1 2 3 4 5 6 7 8 9 0", "1234567890"},
		{"point", ".", "0."},
		{"point-digits", "3 . 1 4", "3.14"},
		{"operand-zero", "5 + 0 3", "5+3"},
		{"operand-point", "5 + .", "5+0."},
		{"after-op", "1 2 +", "12+"},
		{"op-op", "5 + *", "5+*"},
		{"pow", "5 x^y", "5^"},
		{"square", "3 x²", "3^2"},
		{"square-empty", "← x²", "0^2"},
		{"square-digit", "3 x² 4", "4"},
		{"recip", "1 2 1/x", "1/(12)"},
		{"recip-digit", "1 2 1/x 5", "1/(5)"},
		{"func", "sin", "sin()"},
		{"func-digits", "sin 4 5", "sin(45)"},
		{"func-zero", "sin 0 5", "sin(5)"},
		{"func-point", "sin . 5", "sin(0.5)"},
		{"func-replaces", "5 + sin", "sin()"},
		{"func-pi", "cos π", "cos(π)"},
		{"func-digit-pi", "cos 2 π", "cos(2π)"},
		{"sqrt", "√ 9", "√(9)"},
		{"pi", "π", "π"},
		{"digit-pi", "3 π", "3π"},
		{"op-pi", "3 + π", "3+π"},
		{"negate-zero", "+/-", "-"},
		{"negate-digit", "+/- 5", "-5"},
		{"negate-point", "+/- .", "-0."},
		{"negate", "5 +/-", "-5"},
		{"negate-twice", "5 +/- +/-", "5"},
		{"negate-expr", "1 + 2 +/-", "-1+2"},
		{"negate-func", "sin 3 +/-", "-sin(3)"},
		{"backspace", "1 2 3 ←", "12"},
		{"backspace-pi", "3 π ←", "3"},
		{"backspace-all", "1 ← ← ←", ""},
		{"backspace-digit", "1 ← 5", "5"},
		{"backspace-op", "1 + ← 2", "2"},
		{"parens", "( 1 )", "1"},
		{"clear", "1 2 + 3 C", "0"},
		{"clear-func", "sin 3 C 4", "4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc := keycalc.New()
			v, err := calc.Press(c.keys)
			if err != nil {
				t.Fatalf("%q failed to lex: %v", c.keys, err)
			}
			if v.Expression != c.expr {
				t.Errorf("%q: want %q, got %q", c.keys, c.expr, v.Expression)
			}
			if v.Result != "" {
				t.Errorf("%q: result line is %q", c.keys, v.Result)
			}
		})
	}
}

func TestEntryState(t *testing.T) {
	cases := []struct {
		name string
		keys string
		st   keycalc.ParseState
	}{
		{"initial", "", keycalc.ParseState{Expression: "0", AwaitingNewOperand: true}},
		{"digit", "4", keycalc.ParseState{Expression: "4"}},
		{"op", "4 +", keycalc.ParseState{Expression: "4+", PendingBinary: keycalc.Add, AwaitingNewOperand: true}},
		{"op-digit", "4 + 1", keycalc.ParseState{Expression: "4+1", PendingBinary: keycalc.Add}},
		{"pow", "4 x^y", keycalc.ParseState{Expression: "4^", PendingBinary: keycalc.Pow, AwaitingNewOperand: true}},
		{"func", "sin", keycalc.ParseState{
			Expression:         "sin()",
			PendingUnary:       keycalc.Sin,
			UnaryIsLeading:     true,
			AwaitingNewOperand: true,
		}},
		{"func-digit", "sin 3", keycalc.ParseState{
			Expression:          "sin(3)",
			PendingUnary:        keycalc.Sin,
			UnaryIsLeading:      true,
			PendingUnaryOperand: "3",
		}},
		{"func-after-op", "4 + cos", keycalc.ParseState{
			Expression:         "cos()",
			PendingUnary:       keycalc.Cos,
			UnaryIsLeading:     true,
			AwaitingNewOperand: true,
		}},
		{"recip", "1 2 1/x", keycalc.ParseState{
			Expression:          "1/(12)",
			PendingUnary:        keycalc.Recip,
			UnaryIsLeading:      true,
			PendingUnaryOperand: "12",
			AwaitingNewOperand:  true,
		}},
		{"square", "4 + 3 x²", keycalc.ParseState{Expression: "4+3^2", AwaitingNewOperand: true}},
		{"commit", "sin 9 0 *", keycalc.ParseState{Expression: "1*", PendingBinary: keycalc.Mul, AwaitingNewOperand: true}},
		{"commit-pow", "ln 5 x^y", keycalc.ParseState{Expression: "5^", PendingBinary: keycalc.Pow, AwaitingNewOperand: true}},
		{"negate", "sin 3 +/-", keycalc.ParseState{
			Expression:          "-sin(3)",
			PendingUnary:        keycalc.Sin,
			UnaryIsLeading:      true,
			PendingUnaryOperand: "3",
		}},
		{"clear", "sin 3 + C", keycalc.ParseState{Expression: "0", AwaitingNewOperand: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc := keycalc.New()
			if _, err := calc.Press(c.keys); err != nil {
				t.Fatalf("%q failed to lex: %v", c.keys, err)
			}
			if st := calc.State(); st != c.st {
				t.Errorf("%q:\nwant %+v\ngot  %+v", c.keys, c.st, st)
			}
		})
	}
}

func TestAlert(t *testing.T) {
	cases := []struct {
		name  string
		keys  string
		last  keycalc.Token
		alert bool
		expr  string
	}{
		{"open", "5", keycalc.OpenKey, true, "5"},
		{"close", "5", keycalc.CloseKey, true, "5"},
		{"second-point", "1 . 5", keycalc.PointKey, true, "1.5"},
		{"second-point-func", "sin 1 . 5", keycalc.PointKey, true, "sin(1.5)"},
		{"point-new-operand", "1 . 5 +", keycalc.PointKey, false, "1.5+0."},
		{"digit", "1", keycalc.DigitKey(2), false, "12"},
		{"backspace", "1", keycalc.BackspaceKey, false, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc := keycalc.New()
			if _, err := calc.Press(c.keys); err != nil {
				t.Fatalf("%q failed to lex: %v", c.keys, err)
			}
			before := calc.State()
			v := calc.Apply(c.last)
			if v.Alert != c.alert {
				t.Errorf("%q then %v: want alert %t, got %t", c.keys, c.last, c.alert, v.Alert)
			}
			if v.Expression != c.expr {
				t.Errorf("%q then %v: want %q, got %q", c.keys, c.last, c.expr, v.Expression)
			}
			if c.alert && calc.State() != before {
				t.Errorf("%q then %v: ignored key changed state to %+v", c.keys, c.last, calc.State())
			}
		})
	}
}

func TestResultLine(t *testing.T) {
	calc := keycalc.New()
	steps := []struct {
		tok    keycalc.Token
		result string
	}{
		{keycalc.DigitKey(6), ""},
		{keycalc.OpKey(keycalc.Mul), ""},
		{keycalc.DigitKey(7), ""},
		{keycalc.EqualsKey, "42"},
		// Backspace and ignored keys keep the result line.
		{keycalc.BackspaceKey, "42"},
		{keycalc.OpenKey, "42"},
		// Everything else blanks it.
		{keycalc.ClearKey, ""},
		{keycalc.DigitKey(1), ""},
		{keycalc.EqualsKey, "1"},
		{keycalc.PiKey, ""},
		{keycalc.EqualsKey, "3.14159265"},
		{keycalc.NegateKey, ""},
		{keycalc.EqualsKey, "-3.14159265"},
		{keycalc.FuncKey(keycalc.Sin), ""},
		{keycalc.EqualsKey, "0"},
		{keycalc.OpKey(keycalc.Add), ""},
		{keycalc.EqualsKey, "Error"},
		{keycalc.ClearKey, ""},
	}
	for i, s := range steps {
		v := calc.Apply(s.tok)
		if v.Result != s.result {
			t.Errorf("step %d (%v): want result %q, got %q (expression %q)", i, s.tok, s.result, v.Result, v.Expression)
		}
	}
}

func TestClearRestores(t *testing.T) {
	seqs := []string{
		"",
		"1 2 + 8 =",
		"9 / 0 =",
		"sin 3",
		"sin 3 + 4 x^y",
		"1/x",
		"tan 9 0 =",
		"+/- π ← ( .",
	}
	for _, keys := range seqs {
		calc := keycalc.New()
		if _, err := calc.Press(keys); err != nil {
			t.Fatalf("%q failed to lex: %v", keys, err)
		}
		v := calc.Apply(keycalc.ClearKey)
		if v.Expression != "0" || v.Result != "" {
			t.Errorf("%q then C: got %+v", keys, v)
		}
		if calc.State() != keycalc.New().State() {
			t.Errorf("%q then C: state %+v", keys, calc.State())
		}
		if calc.Result() != (keycalc.Result{}) {
			t.Errorf("%q then C: result %+v", keys, calc.Result())
		}
	}
}
