package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/sst/javasst/parser"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "A.java")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "class A { final int N = 3; int x; }")

	out, err := run(t, "parse", "-f", "line", path)
	if err != nil {
		t.Fatal(err)
	}
	want := "class\tA\nconstant\tN\tint\t3\nfield\tx\tint\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestParseCommandReportsSyntaxError(t *testing.T) {
	path := writeSource(t, "class A { int x }")

	_, err := run(t, "parse", path)
	if !errors.Is(err, parser.ErrSyntax) {
		t.Errorf("got %v, want syntax error", err)
	}
}

func TestEvalCommand(t *testing.T) {
	path := writeSource(t, "class A { final int N = 3; int x; }")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "1 + 2 * 3"}, "7\n"},
		{[]string{"eval", "--class", path, "N * N"}, "9\n"},
		{[]string{"eval", "--class", path, "x + 1"}, "not constant\n"},
	}
	for _, tt := range tests {
		t.Run(tt.args[len(tt.args)-1], func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestScanCommand(t *testing.T) {
	path := writeSource(t, "class A {}")

	out, err := run(t, "scan", path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains([]byte(out), []byte("class\tclass")) || !bytes.Contains([]byte(out), []byte("EOF")) {
		t.Errorf("unexpected scan output:\n%s", out)
	}
}

func TestGrammarCommand(t *testing.T) {
	out, err := run(t, "grammar", "--first")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains([]byte(out), []byte("Statement\t[Identifier, if, while, return]\n")) {
		t.Errorf("missing Statement FIRST set:\n%s", out)
	}
}
