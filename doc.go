// Package keycalc implements the key-driven core of a scientific calculator.
//
// A Calculator consumes one key at a time, the way a presentation forwards
// button presses, and maintains two lines of text: the expression being
// entered and the result of the last evaluation. There is no grammar. An
// entry holds at most one binary operator and one function, as on a pocket
// calculator, so "1 2 + 8 =" shows 12+8 and 20 while "sin 9 0 =" shows
// sin(90) and 1. Trigonometric functions take degrees.
//
// Keys can be built directly, e.g. DigitKey(4) or FuncKey(Sqrt), or lexed
// from text with Lex, which understands the key labels and a few aliases.
package keycalc
