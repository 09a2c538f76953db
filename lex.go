package keycalc

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// keywords maps every accepted key spelling to its token. Spellings are
// matched longest first, so "1/x" wins over "1" and "+/-" over "+".
var keywords = map[string]Token{
	"0": DigitKey(0), "1": DigitKey(1), "2": DigitKey(2), "3": DigitKey(3),
	"4": DigitKey(4), "5": DigitKey(5), "6": DigitKey(6), "7": DigitKey(7),
	"8": DigitKey(8), "9": DigitKey(9),
	".": PointKey,

	"+":   OpKey(Add),
	"-":   OpKey(Sub),
	"*":   OpKey(Mul),
	"×":   OpKey(Mul),
	"/":   OpKey(Div),
	"÷":   OpKey(Div),
	"x^y": OpKey(Pow),
	"^":   OpKey(Pow),

	"sin":  FuncKey(Sin),
	"cos":  FuncKey(Cos),
	"tan":  FuncKey(Tan),
	"√":    FuncKey(Sqrt),
	"sqrt": FuncKey(Sqrt),
	"log":  FuncKey(Log),
	"ln":   FuncKey(Ln),
	"exp":  FuncKey(Exp),
	"1/x":  FuncKey(Recip),
	"x²":   FuncKey(Square),
	"x^2":  FuncKey(Square),

	"π":   PiKey,
	"pi":  PiKey,
	"+/-": NegateKey,
	"±":   NegateKey,
	"C":   ClearKey,
	"c":   ClearKey,
	"←":   BackspaceKey,
	"<-":  BackspaceKey,
	"bs":  BackspaceKey,
	"=":   EqualsKey,
	"(":   OpenKey,
	")":   CloseKey,
}

// spellings is the keys of keywords, longest first.
var spellings = func() []string {
	v := make([]string, 0, len(keywords))
	for k := range keywords {
		v = append(v, k)
	}
	sort.Slice(v, func(i, j int) bool {
		if len(v[i]) != len(v[j]) {
			return len(v[i]) > len(v[j])
		}
		return v[i] < v[j]
	})
	return v
}()

// ParseToken parses exactly one key. Surrounding whitespace is ignored.
func ParseToken(s string) (Token, error) {
	t, ok := keywords[strings.TrimSpace(s)]
	if !ok {
		return Token{}, &LexError{Text: s, Col: 1}
	}
	return t, nil
}

// Lex splits a string of keys into tokens. Whitespace between keys is
// optional except where it is needed to separate keys that would otherwise
// merge, e.g. "5 +/-" versus "5+/-" are the same, but "1/ x" is "1", "/",
// and an error.
func Lex(src string) ([]Token, error) {
	var toks []Token
	col := 1
	for len(src) > 0 {
		r, sz := utf8.DecodeRuneInString(src)
		if unicode.IsSpace(r) {
			src = src[sz:]
			col++
			continue
		}
		k := match(src)
		if k == "" {
			return toks, &LexError{Text: string(r), Col: col}
		}
		toks = append(toks, keywords[k])
		src = src[len(k):]
		col += utf8.RuneCountInString(k)
	}
	return toks, nil
}

// match returns the longest key spelling at the start of src, or the empty
// string if there is none.
func match(src string) string {
	for _, k := range spellings {
		if strings.HasPrefix(src, k) {
			return k
		}
	}
	return ""
}

// LexError indicates text that is not a key. It implements InputError.
type LexError struct {
	// Text is the unrecognized text.
	Text string
	// Col is the 1-based rune position of the text in the lexed string.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unknown key "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
