package udf

import (
	"testing"

	"github.com/jjdevbiz/miller/internal/mlrval"
)

func noBuiltins(string) bool { return false }

func TestInstallAndLookup(t *testing.T) {
	r := New("mlr")
	d := &Defsite{
		Name:  "f",
		Arity: 2,
		Process: func(state interface{}, args []mlrval.Mlrval, vars *mlrval.Vars) mlrval.Mlrval {
			return args[0]
		},
	}
	r.Install(d, noBuiltins)

	got, ok := r.Lookup("f")
	if !ok || got.Arity != 2 {
		t.Fatalf("Lookup(f) = %v,%v want arity 2", got, ok)
	}
	if _, ok := r.Lookup("g"); ok {
		t.Fatalf("Lookup(g) unexpectedly found")
	}
}

func TestCloseDropsStateInInstallOrder(t *testing.T) {
	r := New("mlr")
	var order []string
	mk := func(name string) *Defsite {
		return &Defsite{
			Name:  name,
			Arity: 0,
			Drop:  func(state interface{}) { order = append(order, name) },
		}
	}
	r.Install(mk("first"), noBuiltins)
	r.Install(mk("second"), noBuiltins)
	r.Close()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("drop order = %v, want [first second]", order)
	}
}
