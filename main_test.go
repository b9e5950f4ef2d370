// Released under an MIT license. See LICENSE.

package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/michaelmacinnis/icfp/internal/engine/machine"
	"github.com/michaelmacinnis/icfp/pkg/icfp"
)

func example(t *testing.T, c config, name string) (string, string, error) {
	t.Helper()

	b, err := os.ReadFile("examples/" + name)
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr strings.Builder

	err = c.evaluate(&stdout, &stderr, name, string(b))

	return stdout.String(), stderr.String(), err
}

func TestExamples(t *testing.T) {
	c := config{limit: machine.DefaultLimit}

	tests := []struct {
		name     string
		expected string
	}{
		{"hello.icfp", "Hello World!\n"},
		{"power.icfp", "16\n"},
		{"trace.icfp", "12\n"},
	}

	for _, tt := range tests {
		stdout, stderr, err := example(t, c, tt.name)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}

		if stdout != tt.expected {
			t.Fatalf("%s: expected %q; got %q", tt.name, tt.expected, stdout)
		}

		if stderr != "" {
			t.Fatalf("%s: unexpected output on stderr: %q", tt.name, stderr)
		}
	}
}

func TestTrace(t *testing.T) {
	c := config{limit: machine.DefaultLimit, trace: true}

	_, stderr, err := example(t, c, "trace.icfp")
	if err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		`1: B$ L" B+ v" v" B* I$ I#`,
		`2: B+ B* I$ I# B* I$ I#`,
		`3: B+ I' B* I$ I#`,
		`4: B+ I' I'`,
		`5: I-`,
		`beta 2 steps 5`,
	}, "\n") + "\n"

	if stderr != expected {
		t.Fatalf("Expected:\n%s\nGot:\n%s", expected, stderr)
	}
}

func TestClippedTrace(t *testing.T) {
	c := config{limit: machine.DefaultLimit, trace: true, width: 12}

	_, stderr, err := example(t, c, "trace.icfp")
	if err != nil {
		t.Fatal(err)
	}

	first := strings.SplitN(stderr, "\n", 2)[0]
	if first != `1: B$ L" ...` {
		t.Fatalf("Expected a clipped line; got %q", first)
	}
}

func TestLimit(t *testing.T) {
	c := config{limit: 1000}

	_, _, err := example(t, c, "omega.icfp")
	if !errors.Is(err, icfp.ErrStepLimitExceeded) {
		t.Fatalf("Expected step limit exceeded; got %v", err)
	}
}

func TestQuote(t *testing.T) {
	c := config{limit: machine.DefaultLimit, quote: true}

	stdout, _, err := example(t, c, "hello.icfp")
	if err != nil {
		t.Fatal(err)
	}

	if stdout != "$'Hello World!'\n" {
		t.Fatalf("Expected a quoted string; got %q", stdout)
	}
}

func TestEncodeDecode(t *testing.T) {
	var b strings.Builder

	if err := encode(&b, `get index\n`); err != nil {
		t.Fatal(err)
	}

	m := strings.TrimSuffix(b.String(), "\n")
	if m != `S'%4}).$%8~` {
		t.Fatalf("Expected S'%%4}).$%%8~; got %s", m)
	}

	b.Reset()

	if err := decode(&b, m); err != nil {
		t.Fatal(err)
	}

	if b.String() != "get index\n\n" {
		t.Fatalf("Expected the message text; got %q", b.String())
	}
}

func TestParseError(t *testing.T) {
	var stdout, stderr strings.Builder

	err := config{limit: machine.DefaultLimit}.evaluate(&stdout, &stderr, "command", "B+ I#")
	if !errors.Is(err, icfp.ErrTruncatedInput) {
		t.Fatalf("Expected truncated input; got %v", err)
	}

	if !strings.HasPrefix(err.Error(), "command:1:") {
		t.Fatalf("Expected the error to name its source; got %v", err)
	}
}
