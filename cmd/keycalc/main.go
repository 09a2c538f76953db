package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/keycalc"
	"github.com/zephyrtronium/keycalc/internal/script"
	"github.com/zephyrtronium/keycalc/internal/tui"
)

func main() {
	log.SetFlags(0)
	var (
		inname, tape, record, level string
		verbose, echo, interactive  bool
		prec                        int
		tol                         float64
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.IntVar(&prec, "p", 64, "precision of exp, ln, log, √, and powers in bits")
	flag.Float64Var(&tol, "tol", 1e-9, "distance in degrees from 90 mod 180 at which tan is infinite")
	flag.BoolVar(&verbose, "v", false, "print both lines after every key")
	flag.BoolVar(&echo, "echo", false, "dump the entry state after each evaluation")
	flag.StringVar(&tape, "script", "", "replay the YAML key scripts in this file and report mismatches")
	flag.StringVar(&record, "record", "", "write the input as a YAML key script with this name instead of printing results")
	flag.BoolVar(&interactive, "tui", false, "run the interactive terminal calculator")
	flag.StringVar(&level, "log", "", "log level for calculator events (debug, info, warn, error; default none)")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if tol < 0 {
		log.Fatalf("tolerance (%g) must not be negative", tol)
	}

	opts := []keycalc.Option{keycalc.Prec(uint(prec)), keycalc.Tolerance(tol)}
	logger := newLogger(level)
	if logger != nil {
		opts = append(opts, keycalc.Logger(logger))
	}

	switch {
	case tape != "":
		if !replay(tape, opts) {
			os.Exit(1)
		}
		return
	case interactive:
		if err := tui.Run(keycalc.New(opts...), logger); err != nil {
			log.Fatal(err)
		}
		return
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	var lines []string
	for _, in := range ins {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if l := strings.TrimSpace(sc.Text()); l != "" {
				lines = append(lines, l)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	if record != "" {
		t, err := script.Record(record, lines, opts...)
		if err != nil {
			log.Fatal(err)
		}
		if err := script.Write(os.Stdout, t); err != nil {
			log.Fatal(err)
		}
		return
	}

	calc := keycalc.New(opts...)
	for _, l := range lines {
		toks, err := keycalc.Lex(l)
		if err != nil {
			log.Fatal(err)
		}
		evaluated := false
		for _, tok := range toks {
			v := calc.Apply(tok)
			if verbose {
				fmt.Printf("%-6v %q %q\n", tok, v.Expression, v.Result)
			}
			if tok.Kind != keycalc.KindEquals {
				continue
			}
			evaluated = true
			if echo {
				fmt.Print(spew.Sdump(calc.State()))
			}
			show(calc)
		}
		if !evaluated && !verbose {
			fmt.Println(calc.View().Expression)
		}
	}
}

// show prints the result line, with the reason for an error.
func show(calc *keycalc.Calculator) {
	r := calc.Result()
	if r.Kind == keycalc.ResultError && r.Err != nil {
		fmt.Printf("%v (%v)\n", r, r.Err)
		return
	}
	fmt.Println(r)
}

func replay(name string, opts []keycalc.Option) bool {
	tapes, err := script.LoadFile(name)
	if err != nil {
		log.Fatal(err)
	}
	ok := true
	for _, t := range tapes {
		bad := script.Replay(t, opts...)
		for _, m := range bad {
			fmt.Printf("%s: %v\n", t.Name, m)
		}
		if len(bad) != 0 {
			ok = false
			continue
		}
		fmt.Printf("%s: ok\n", t.Name)
	}
	return ok
}

func newLogger(level string) *slog.Logger {
	if level == "" {
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		log.Fatalf("bad log level %q: %v", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
