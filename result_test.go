package keycalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/keycalc"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{20, "20"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.3"},
		{1.0 / 3, "0.33333333"},
		{2.0 / 3, "0.66666667"},
		{123.456, "123.456"},
		{3 * math.Pi, "9.42477796"},
		{1e20, "100000000000000000000"},
		{1e-9, "0"},
		{-1e-9, "0"},
		{5e-9, "0.00000001"},
		{math.Inf(1), "∞"},
		{math.Inf(-1), "-∞"},
	}
	for _, c := range cases {
		if got := keycalc.FormatNumber(c.x); got != c.want {
			t.Errorf("formatting %g: want %q, got %q", c.x, c.want, got)
		}
	}
}

func TestResultString(t *testing.T) {
	cases := []struct {
		name string
		r    keycalc.Result
		want string
	}{
		{"none", keycalc.Result{}, ""},
		{"number", keycalc.Number(4), "4"},
		{"inf", keycalc.Infinity(1), "∞"},
		{"neg-inf", keycalc.Infinity(-1), "-∞"},
		{"number-inf", keycalc.Number(math.Inf(1)), "∞"},
		{"error", keycalc.Failure(errors.New("x")), "Error"},
		{"nan", keycalc.Number(math.NaN()), "Error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}
