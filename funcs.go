package keycalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// fn is a function of one real argument, computed at a given precision.
type fn func(prec uint, x float64) (float64, error)

// unaries is the function behind each function key. Square is handled as
// postfix text by the accumulator and evaluated as a power.
var unaries = map[Unary]fn{
	Sin: degrees(math.Sin),
	Cos: degrees(math.Cos),
	// Tan's asymptotes are checked by the evaluator before calling this.
	Tan: degrees(math.Tan),
	Sqrt: nonneg("√", monadic((*big.Float).Sqrt)),
	Log: logarithm("log", monadic(func(out, in *big.Float) *big.Float {
		ten := new(big.Float).SetPrec(out.Prec()).SetInt64(10)
		bigfloat.Log(out, in)
		bigfloat.Log(ten, ten)
		return out.Quo(out, ten)
	})),
	Ln:  logarithm("ln", monadic(bigfloat.Log)),
	Exp: exponential,
	Recip: func(prec uint, x float64) (float64, error) {
		if x == 0 {
			return 0, ErrDivideByZero
		}
		return 1 / x, nil
	},
	Square: func(prec uint, x float64) (float64, error) {
		return x * x, nil
	},
}

// degrees wraps a trigonometric function to take its argument in degrees.
func degrees(f func(float64) float64) fn {
	return func(prec uint, x float64) (float64, error) {
		return f(x * math.Pi / 180), nil
	}
}

// monadic evaluates a big.Float function of one variable. f sets out to its
// result or returns a different value holding it. If f panics with an error
// that unwraps to big.ErrNaN, the result is a DomainError wrapping it. Other
// panics propagate. +Inf maps to itself.
func monadic(f func(out, in *big.Float) *big.Float) fn {
	return func(prec uint, x float64) (r float64, err error) {
		switch {
		case math.IsInf(x, 1):
			return x, nil
		case math.IsInf(x, -1), math.IsNaN(x):
			// bigfloat doesn't promise anything about these.
			return 0, &DomainError{X: x}
		}
		defer catch(x, "", &err)
		in := new(big.Float).SetPrec(prec).SetFloat64(x)
		out := new(big.Float).SetPrec(prec)
		r, _ = f(out, in).Float64()
		return r, nil
	}
}

// catch recovers a NaN panic from a big.Float computation on x into a
// DomainError stored in *err. It must be deferred directly.
func catch(x float64, name string, err *error) {
	p := recover()
	if p == nil {
		return
	}
	e, ok := p.(error)
	if !ok || !errors.As(e, new(big.ErrNaN)) {
		panic(p)
	}
	*err = &DomainError{X: x, Func: name, nan: e}
}

// nonneg rejects negative arguments before calling f.
func nonneg(name string, f fn) fn {
	return func(prec uint, x float64) (float64, error) {
		if x < 0 {
			return 0, &DomainError{X: x, Func: name}
		}
		r, err := f(prec, x)
		return r, named(err, name)
	}
}

// logarithm rejects negative arguments and maps zero to negative infinity.
func logarithm(name string, f fn) fn {
	l := nonneg(name, f)
	return func(prec uint, x float64) (float64, error) {
		if x == 0 {
			return math.Inf(-1), nil
		}
		return l(prec, x)
	}
}

// expf is bigfloat's exponential.
var expf = monadic(bigfloat.Exp)

func exponential(prec uint, x float64) (float64, error) {
	// Outside these bounds the float64 result is already decided.
	switch {
	case x > 710:
		return math.Inf(1), nil
	case x < -746:
		return 0, nil
	}
	r, err := expf(prec, x)
	return r, named(err, "exp")
}

// power computes x^y. Positive bases with a finite exponent and a finite,
// nonzero result go through bigfloat; the rest, including negative bases
// with integer exponents, keep the math.Pow result.
func power(prec uint, x, y float64) (r float64, err error) {
	r = math.Pow(x, y)
	switch {
	case math.IsNaN(r):
		return 0, &DomainError{X: x, Func: "^"}
	case x <= 0, r == 0, math.IsInf(r, 0), math.IsInf(x, 0), math.IsInf(y, 0):
		return r, nil
	case y == 0, y == 1:
		return r, nil
	}
	defer catch(x, "^", &err)
	out := new(big.Float).SetPrec(prec)
	a := new(big.Float).SetPrec(prec).SetFloat64(x)
	b := new(big.Float).SetPrec(prec).SetFloat64(y)
	r, _ = bigfloat.Pow(out, a, b).Float64()
	return r, nil
}

// named fills in the function name of a DomainError.
func named(err error, name string) error {
	if d, ok := err.(*DomainError); ok && d.Func == "" {
		d.Func = name
	}
	return err
}
