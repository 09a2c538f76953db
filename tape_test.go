package keycalc_test

import (
	"path/filepath"
	"testing"

	"github.com/zephyrtronium/keycalc/internal/script"
)

func TestTapes(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no tapes")
	}
	for _, name := range files {
		tapes, err := script.LoadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, tape := range tapes {
			t.Run(filepath.Base(name)+"/"+tape.Name, func(t *testing.T) {
				for _, m := range script.Replay(tape) {
					t.Error(m)
				}
			})
		}
	}
}
