// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/literal"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/engine/machine"
)

func TestRun(t *testing.T) {
	v, stats, err := Run("test", `B$ B$ L# L$ v# B. SB%,,/ S}Q/2,$_ IK`)
	if err != nil {
		t.Fatal(err)
	}

	if l := literal.String(v); l != `SB%,,/}Q/2,$_` {
		t.Fatalf("Expected SB%%,,/}Q/2,$_; got %s", l)
	}

	if stats.Beta != 2 || stats.Steps != 3 {
		t.Fatalf("Expected 2 beta reductions in 3 steps; got %+v", stats)
	}
}

func TestRunParseError(t *testing.T) {
	_, _, err := Run("test", `B+ I!`)
	if !errors.Is(err, fault.ErrTruncatedInput) {
		t.Fatalf("Expected truncated input; got %v", err)
	}

	_, _, err = Run("test", " \n ")
	if !errors.Is(err, fault.ErrEmptyInput) {
		t.Fatalf("Expected empty input; got %v", err)
	}
}

func TestLimit(t *testing.T) {
	_, stats, err := Run("test", `B$ L! B$ v! v! L! B$ v! v!`, Limit(10))
	if !errors.Is(err, fault.ErrStepLimitExceeded) {
		t.Fatalf("Expected step limit exceeded; got %v", err)
	}

	if stats.Beta != 10 {
		t.Fatalf("Expected 10 beta reductions; got %d", stats.Beta)
	}
}

func TestTrace(t *testing.T) {
	count := int64(0)

	_, stats, err := Run("test", `B$ L# B$ L" B+ v" v" B* I$ I# v8`,
		Trace(func(steps int64, _ term.I) {
			count++

			if steps != count {
				t.Fatalf("Expected step %d; got %d", count, steps)
			}
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if count != 5 || stats.Steps != 5 {
		t.Fatalf("Expected 5 steps; got %d", count)
	}
}

func TestStatsAreReset(t *testing.T) {
	e := New()

	if e.limit != machine.DefaultLimit {
		t.Fatalf("Expected the default limit; got %d", e.limit)
	}

	p, _, err := Run("test", `B$ L! v! I!`)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.Evaluate(p); err != nil {
		t.Fatal(err)
	}

	if e.Stats() != (Stats{}) {
		t.Fatalf("Expected no work for a normal form; got %+v", e.Stats())
	}
}
