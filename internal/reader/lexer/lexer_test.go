// Released under an MIT license. See LICENSE.

package lexer

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/struct/loc"
	"github.com/michaelmacinnis/icfp/internal/common/struct/token"
)

func TestApplication(t *testing.T) {
	h := setup(t, "Application")

	h.scan(`B$ B$ L# L$ v# B. SB%,,/ S}Q/2,$_ IK`,
		h.token("B$", 1),
		h.token("B$", 1),
		h.token("L#", 1),
		h.token("L$", 1),
		h.token("v#", 1),
		h.token("B.", 1),
		h.token("SB%,,/", 1),
		h.token("S}Q/2,$_", 1),
		h.token("IK", 1),
		nil,
	)
}

func TestEmptyString(t *testing.T) {
	h := setup(t, "EmptyString")

	h.scan("B. S S\n",
		h.token("B.", 1),
		h.token("S", 1),
		h.token("S", 1),
		nil,
	)
}

func TestMixedWhitespace(t *testing.T) {
	h := setup(t, "MixedWhitespace")

	h.scan("  U-\t\tI$\r\n\n  T",
		h.space(2),
		h.token("U-", 0),
		h.space(2),
		h.token("I$", 1),
		h.newline(),
		h.newline(),
		h.space(2),
		h.token("T", 1),
		nil,
	)
}

func TestPartialToken(t *testing.T) {
	l := New("PartialToken")

	l.Scan("I/")

	if tok := l.Token(); tok != nil {
		t.Fatalf("Expected no token before the end of the text; got %v", tok)
	}

	l.Scan("6 ")

	tok := l.Token()
	if tok == nil || tok.Value() != "I/6" {
		t.Fatalf("Expected I/6; got %v", tok)
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("test", "? B> I# I$ S9%3 S./")
	if err != nil {
		t.Fatal(err)
	}

	expected := []token.Class{
		token.If, token.Binary, token.Integer, token.Integer,
		token.String, token.String,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens; got %d", len(expected), len(tokens))
	}

	for i, c := range expected {
		if !tokens[i].Is(c) {
			t.Errorf("Expected %v; got %v", c, tokens[i])
		}
	}

	if s := tokens[5].Source(); s.Index != 6 || s.Char != 17 {
		t.Errorf("Expected token 6 at column 17; got %d at %d", s.Index, s.Char)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, s := range []string{"", " ", "\n\t \n"} {
		_, err := Tokenize("test", s)
		if !errors.Is(err, fault.ErrEmptyInput) {
			t.Errorf("%q: expected empty input error; got %v", s, err)
		}
	}
}

func TestTokenizeInvalidByte(t *testing.T) {
	_, err := Tokenize("test", "B+ I# I\x7f")
	if !errors.Is(err, fault.ErrMalformedToken) {
		t.Fatalf("Expected malformed token error; got %v", err)
	}

	var f *fault.T
	if !errors.As(err, &f) || f.Source() == nil || f.Source().Char != 8 {
		t.Fatalf("Expected error at column 8; got %v", err)
	}
}

type harness struct {
	char   int
	count  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New("!", &loc.T{}) //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		char:  1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.Value() != e.Value() || *a.Source() != *e.Source():
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) newline() *token.T {
	h.char = 1
	h.source.Line++

	return skip
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.lexer.Close()
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.char += n

	return skip
}

// token returns the expected token for s followed by n bytes of whitespace.
func (h *harness) token(s string, n int) *token.T {
	h.count++

	h.source.Char = h.char
	h.source.Index = h.count

	h.char += len(s) + n

	source := h.source

	return token.New(s, &source)
}
