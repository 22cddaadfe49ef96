package kernel

import (
	"math/rand"

	"github.com/jjdevbiz/miller/internal/mlrval"
)

// Urand, Urand32, and Urandint back the three zero/binary random-number
// builtins. They share the package-level math/rand source rather than each
// seeding their own, so a single --seed applies to all three.
func Urand() mlrval.Mlrval { return mlrval.FromFloat(rand.Float64()) }

func Urand32() mlrval.Mlrval { return mlrval.FromInt(int64(rand.Uint32())) }

func Urandint(lo, hi mlrval.Mlrval) mlrval.Mlrval {
	lov, ok1 := lo.Int64()
	hiv, ok2 := hi.Int64()
	if !ok1 || !ok2 || hiv < lov {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromInt(lov + rand.Int63n(hiv-lov+1))
}

// Seed reseeds the shared random source.
func Seed(n int64) { rand.Seed(n) }
