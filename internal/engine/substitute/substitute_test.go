// Released under an MIT license. See LICENSE.

package substitute

import (
	"testing"

	"github.com/michaelmacinnis/icfp/internal/common/interface/literal"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/type/binary"
	"github.com/michaelmacinnis/icfp/internal/common/type/lambda"
	"github.com/michaelmacinnis/icfp/internal/common/type/num"
	"github.com/michaelmacinnis/icfp/internal/common/type/variable"
	"github.com/michaelmacinnis/icfp/internal/reader/parser"
)

func parse(t *testing.T, s string) term.I {
	t.Helper()

	p, err := parser.String("test", s)
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}

	return p
}

func TestVariable(t *testing.T) {
	r := num.Int64(7)

	if got := Substitute(variable.New(1), 1, r, NewNames()); got != r {
		t.Fatalf("Expected %s; got %s", r, got)
	}

	v := variable.New(2)
	if got := Substitute(v, 1, r, NewNames()); got != v {
		t.Fatalf("Expected %s; got %s", v, got)
	}
}

func TestShadowedBinderIsUnchanged(t *testing.T) {
	body := parse(t, `L" B+ v" v"`)

	got := Substitute(body, 1, num.Int64(3), NewNames(body))
	if got != body {
		t.Fatalf("Expected the lambda to be returned unchanged; got %s", got)
	}
}

func TestSubstituteUnderLambda(t *testing.T) {
	body := parse(t, `L# B+ v" v#`)

	got := Substitute(body, 1, num.Int64(3), NewNames(body))

	if s := literal.String(got); s != `L# B+ I$ v#` {
		t.Fatalf("Expected L# B+ I$ v#; got %s", s)
	}
}

func TestCaptureAvoidance(t *testing.T) {
	// (\v2 -> v1 + v2)[v1 := v2] must not capture v2.
	body := parse(t, `L# B+ v" v#`)
	replacement := variable.New(2)

	names := NewNames(body, replacement)

	got := Substitute(body, 1, replacement, names)

	l := lambda.To(got)
	if l.Var() == 2 {
		t.Fatalf("Expected the binder to be renamed; got %s", got)
	}

	b := binary.To(l.Body())

	if !b.Left().Equal(replacement) {
		t.Fatalf("Expected v2 to remain free; got %s", got)
	}

	if !b.Right().Equal(variable.New(l.Var())) {
		t.Fatalf("Expected the bound variable to be renamed; got %s", got)
	}

	if !IsFree(got, 2) {
		t.Fatalf("Expected v2 to be free in %s", got)
	}
}

func TestCaptureAvoidanceNested(t *testing.T) {
	// Both binders capture a variable free in the replacement.
	body := parse(t, `L# L$ B+ B+ v" v# v$`)
	replacement := parse(t, `B* v# v$`)

	got := Substitute(body, 1, replacement, NewNames(body, replacement))

	free := Free(got)
	if _, ok := free[2]; !ok {
		t.Fatalf("Expected v2 to be free in %s", got)
	}

	if _, ok := free[3]; !ok {
		t.Fatalf("Expected v3 to be free in %s", got)
	}

	if len(free) != 2 {
		t.Fatalf("Expected exactly v2 and v3 to be free in %s", got)
	}
}

func TestUnchangedSubtreesAreShared(t *testing.T) {
	body := parse(t, `B+ B* I# I$ v"`)

	got := binary.To(Substitute(body, 1, num.Int64(5), NewNames(body)))

	if got.Left() != binary.To(body).Left() {
		t.Fatal("Expected the untouched left operand to be shared")
	}
}

func TestFree(t *testing.T) {
	p := parse(t, `B$ L" B+ v" v# L# v$`)

	free := Free(p)
	if len(free) != 2 {
		t.Fatalf("Expected two free variables; got %v", free)
	}

	for _, id := range []variable.ID{2, 3} {
		if _, ok := free[id]; !ok {
			t.Errorf("Expected v%d to be free", id)
		}
	}
}

func TestNamesAreFresh(t *testing.T) {
	p := parse(t, `L~ B$ v" v!`)

	names := NewNames(p)

	seen := map[variable.ID]bool{}
	for i := 0; i < 1000; i++ {
		id := names.Fresh()
		if id <= 93 {
			t.Fatalf("Fresh returned %d which is used by the program", id)
		}

		if seen[id] {
			t.Fatalf("Fresh returned %d twice", id)
		}

		seen[id] = true
	}
}

func TestMax(t *testing.T) {
	if _, ok := Max(num.Int64(1)); ok {
		t.Fatal("Expected no variables")
	}

	m, ok := Max(parse(t, `L$ B$ v" v%`))
	if !ok || m != 4 {
		t.Fatalf("Expected 4; got %d", m)
	}
}
