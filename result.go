package keycalc

import (
	"math"
	"strconv"
	"strings"
)

// ResultKind tags an evaluation result.
type ResultKind int8

const (
	// ResultNone means nothing has been evaluated since the last clear.
	ResultNone ResultKind = iota
	// ResultNumber is a finite value.
	ResultNumber
	// ResultInfinity is an infinite value, including tangent asymptotes.
	ResultInfinity
	// ResultError is a failed evaluation.
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "None"
	case ResultNumber:
		return "Number"
	case ResultInfinity:
		return "Infinity"
	case ResultError:
		return "Error"
	}
	return "ResultKind(" + strconv.Itoa(int(k)) + ")"
}

// Result is the outcome of evaluating an expression.
type Result struct {
	Kind ResultKind
	// Value is the number for ResultNumber and ±Inf for ResultInfinity.
	Value float64
	// Err is the cause of a ResultError.
	Err error
}

// Digits is the maximum number of fractional digits in a rendered number.
const Digits = 8

// Number creates a result from a value, classifying infinities and NaN.
func Number(x float64) Result {
	switch {
	case math.IsNaN(x):
		return Result{Kind: ResultError, Err: &DomainError{X: x}}
	case math.IsInf(x, 0):
		return Infinity(x)
	}
	return Result{Kind: ResultNumber, Value: x}
}

// Infinity creates an infinite result with the sign of x.
func Infinity(x float64) Result {
	if x < 0 {
		return Result{Kind: ResultInfinity, Value: math.Inf(-1)}
	}
	return Result{Kind: ResultInfinity, Value: math.Inf(1)}
}

// Failure creates an error result.
func Failure(err error) Result {
	return Result{Kind: ResultError, Err: err}
}

// String renders the result as shown on the result line: numbers to at most
// eight fractional digits without trailing zeros or exponents, ∞ or -∞ for
// infinities, and Error for errors. An empty result renders as the empty
// string.
func (r Result) String() string {
	switch r.Kind {
	case ResultNumber:
		return FormatNumber(r.Value)
	case ResultInfinity:
		if r.Value < 0 {
			return "-∞"
		}
		return "∞"
	case ResultError:
		return "Error"
	}
	return ""
}

// FormatNumber renders x in plain decimal notation rounded to Digits
// fractional digits, with trailing zeros and a trailing point removed.
// Results that round to zero render as "0", never "-0".
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}
	s := strconv.FormatFloat(x, 'f', Digits, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
