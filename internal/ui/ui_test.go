// Released under an MIT license. See LICENSE.

package ui

import (
	"errors"
	"reflect"
	"testing"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/literal"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/engine"
)

type transcript struct {
	errs    []error
	results []string
}

func (tr *transcript) show(v term.I, err error) {
	if err != nil {
		tr.errs = append(tr.errs, err)

		return
	}

	tr.results = append(tr.results, literal.String(v))
}

func TestSession(t *testing.T) {
	tr := &transcript{}
	s := newSession(engine.New(), tr.show)

	if s.prompt() != prompt {
		t.Fatalf("Expected %q; got %q", prompt, s.prompt())
	}

	if !s.line("B+ I# I$ U- I$") {
		t.Fatal("Session ended early")
	}

	if !s.line("B$ L# B$ L\" B+ v\" v\"") {
		t.Fatal("Session ended early")
	}

	if s.prompt() != continuation {
		t.Fatalf("Expected %q; got %q", continuation, s.prompt())
	}

	// An exit word is a term's body while a term is incomplete.
	if !s.line("stop") {
		t.Fatal("Session ended early")
	}

	expected := []string{"I&", "U- I$"}
	if !reflect.DeepEqual(tr.results, expected) {
		t.Fatalf("Expected %v; got %v", expected, tr.results)
	}

	if len(tr.errs) != 1 || !errors.Is(tr.errs[0], fault.ErrUnknownIndicator) {
		t.Fatalf("Expected an unknown indicator error; got %v", tr.errs)
	}

	if s.prompt() != prompt {
		t.Fatal("Expected the incomplete term to be discarded")
	}

	if s.line(" bye ") {
		t.Fatal("Expected bye to end the session")
	}
}

func TestMultiLineTerm(t *testing.T) {
	tr := &transcript{}
	s := newSession(engine.New(), tr.show)

	for _, l := range []string{"B$ L# B$ L\" B+ v\" v\"", "B* I$ I#", "v8"} {
		if !s.line(l) {
			t.Fatal("Session ended early")
		}
	}

	if len(tr.errs) != 0 {
		t.Fatal(tr.errs)
	}

	if !reflect.DeepEqual(tr.results, []string{"I-"}) {
		t.Fatalf("Expected I-; got %v", tr.results)
	}
}

func TestReset(t *testing.T) {
	tr := &transcript{}
	s := newSession(engine.New(), tr.show)

	s.line("B+ I#")
	s.reset()

	if s.prompt() != prompt {
		t.Fatal("Expected reset to discard the incomplete term")
	}

	s.line("I$")

	if !reflect.DeepEqual(tr.results, []string{"I$"}) {
		t.Fatalf("Expected I$; got %v", tr.results)
	}
}

func TestComplete(t *testing.T) {
	if cs := complete("b"); !reflect.DeepEqual(cs, []string{"bye"}) {
		t.Fatalf("Expected bye; got %v", cs)
	}

	if cs := complete(""); cs != nil {
		t.Fatalf("Expected no completions; got %v", cs)
	}
}
