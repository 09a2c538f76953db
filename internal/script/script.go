// Package script reads and replays tapes: named sequences of key presses
// with the lines a calculator should show after each.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/keycalc"
)

// Tape is a named sequence of steps, replayed on one fresh calculator.
type Tape struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a string of keys and the lines expected after pressing them. Nil
// expectations are not checked.
type Step struct {
	Keys       string  `yaml:"keys"`
	Expression *string `yaml:"expression,omitempty"`
	Result     *string `yaml:"result,omitempty"`
	Alert      *bool   `yaml:"alert,omitempty"`
}

// Load reads every YAML document in r as a tape.
func Load(r io.Reader) ([]Tape, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var tapes []Tape
	for {
		var t Tape
		err := dec.Decode(&t)
		if errors.Is(err, io.EOF) {
			return tapes, nil
		}
		if err != nil {
			return tapes, fmt.Errorf("tape %d: %w", len(tapes)+1, err)
		}
		if len(t.Steps) == 0 {
			return tapes, fmt.Errorf("tape %d (%s): no steps", len(tapes)+1, t.Name)
		}
		tapes = append(tapes, t)
	}
}

// LoadFile reads tapes from a file.
func LoadFile(name string) ([]Tape, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return t, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// Mismatch is a step whose lines differed from the tape.
type Mismatch struct {
	// Step is the 1-based index of the step.
	Step int
	// Keys is the step's keys.
	Keys string
	// Field is "keys", "expression", "result", or "alert".
	Field string
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("step %d (%s): %s: want %q, got %q", m.Step, m.Keys, m.Field, m.Want, m.Got)
}

// Replay presses each step's keys on a new calculator and reports every
// expectation that was not met. A step whose keys do not lex is reported
// and skipped.
func Replay(t Tape, opts ...keycalc.Option) []Mismatch {
	var bad []Mismatch
	calc := keycalc.New(opts...)
	for i, s := range t.Steps {
		v, err := calc.Press(s.Keys)
		if err != nil {
			bad = append(bad, Mismatch{Step: i + 1, Keys: s.Keys, Field: "keys", Got: err.Error()})
			continue
		}
		if s.Expression != nil && *s.Expression != v.Expression {
			bad = append(bad, Mismatch{Step: i + 1, Keys: s.Keys, Field: "expression", Want: *s.Expression, Got: v.Expression})
		}
		if s.Result != nil && *s.Result != v.Result {
			bad = append(bad, Mismatch{Step: i + 1, Keys: s.Keys, Field: "result", Want: *s.Result, Got: v.Result})
		}
		if s.Alert != nil && *s.Alert != v.Alert {
			bad = append(bad, Mismatch{Step: i + 1, Keys: s.Keys, Field: "alert", Want: fmt.Sprint(*s.Alert), Got: fmt.Sprint(v.Alert)})
		}
	}
	return bad
}

// Record presses each string of keys on a new calculator and returns a tape
// expecting exactly what it showed.
func Record(name string, keys []string, opts ...keycalc.Option) (Tape, error) {
	t := Tape{Name: name, Steps: make([]Step, 0, len(keys))}
	calc := keycalc.New(opts...)
	for _, k := range keys {
		v, err := calc.Press(k)
		if err != nil {
			return t, err
		}
		expr, res := v.Expression, v.Result
		s := Step{Keys: k, Expression: &expr, Result: &res}
		if v.Alert {
			s.Alert = &v.Alert
		}
		t.Steps = append(t.Steps, s)
	}
	return t, nil
}

// Write encodes tapes as a YAML stream.
func Write(w io.Writer, tapes ...Tape) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, t := range tapes {
		if err := enc.Encode(t); err != nil {
			return err
		}
	}
	return enc.Close()
}
