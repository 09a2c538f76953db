//go:build go1.18
// +build go1.18

package keycalc_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/keycalc"
)

func FuzzPress(f *testing.F) {
	f.Add("12+8=")
	f.Add("sin 90 + 1 =")
	f.Add("1/x tan 90 x^y . . ← =")
	f.Add("+/- π x² C 9/0=")
	f.Fuzz(func(t *testing.T, s string) {
		calc := keycalc.New()
		toks, err := keycalc.Lex(s)
		if err != nil {
			return
		}
		for _, tok := range toks {
			v := calc.Apply(tok)
			st := calc.State()
			if st.Expression != v.Expression {
				t.Fatalf("%q: view %q disagrees with state %q", s, v.Expression, st.Expression)
			}
			if st.Expression != strings.TrimSpace(st.Expression) {
				t.Fatalf("%q: expression %q has surrounding space", s, st.Expression)
			}
			if st.PendingUnaryOperand != "" && !st.UnaryIsLeading {
				t.Fatalf("%q: operand %q without open function", s, st.PendingUnaryOperand)
			}
		}
		v := calc.Apply(keycalc.ClearKey)
		if v.Expression != "0" || v.Result != "" {
			t.Fatalf("%q: clear gave %+v", s, v)
		}
	})
}
