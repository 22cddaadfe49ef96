package kernel

import (
	"github.com/jjdevbiz/miller/internal/mlrval"
)

func bothInts(a, b mlrval.Mlrval) (int64, int64, bool) {
	av, ok1 := a.Int64()
	bv, ok2 := b.Int64()
	return av, bv, ok1 && ok2 && a.Type() == mlrval.Int && b.Type() == mlrval.Int
}

// Add is binary "+"; it stays integral when both operands are int, the way
// Miller's own arithmetic kernel avoids widening small integer counters to
// float unnecessarily.
func Add(a, b mlrval.Mlrval) mlrval.Mlrval {
	if av, bv, ok := bothInts(a, b); ok {
		return mlrval.FromInt(av + bv)
	}
	av, ok1 := a.Float64()
	bv, ok2 := b.Float64()
	if !ok1 || !ok2 {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromFloat(av + bv)
}

func Sub(a, b mlrval.Mlrval) mlrval.Mlrval {
	if av, bv, ok := bothInts(a, b); ok {
		return mlrval.FromInt(av - bv)
	}
	av, ok1 := a.Float64()
	bv, ok2 := b.Float64()
	if !ok1 || !ok2 {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromFloat(av - bv)
}

func Mul(a, b mlrval.Mlrval) mlrval.Mlrval {
	if av, bv, ok := bothInts(a, b); ok {
		return mlrval.FromInt(av * bv)
	}
	av, ok1 := a.Float64()
	bv, ok2 := b.Float64()
	if !ok1 || !ok2 {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromFloat(av * bv)
}

func Div(a, b mlrval.Mlrval) mlrval.Mlrval {
	av, ok1 := a.Float64()
	bv, ok2 := b.Float64()
	if !ok1 || !ok2 {
		return mlrval.FromError("non-numeric argument")
	}
	if bv == 0 {
		return mlrval.FromError("division by zero")
	}
	return mlrval.FromFloat(av / bv)
}

func IntDiv(a, b mlrval.Mlrval) mlrval.Mlrval {
	av, bv, ok := bothInts(a, b)
	if !ok {
		fav, ok1 := a.Float64()
		fbv, ok2 := b.Float64()
		if !ok1 || !ok2 || fbv == 0 {
			return mlrval.FromError("non-numeric argument")
		}
		q := fav / fbv
		if q >= 0 {
			return mlrval.FromInt(int64(q))
		}
		return mlrval.FromInt(-int64(-q))
	}
	if bv == 0 {
		return mlrval.FromError("division by zero")
	}
	q := av / bv
	if (av%bv != 0) && ((av < 0) != (bv < 0)) {
		q--
	}
	return mlrval.FromInt(q)
}

func Mod(a, b mlrval.Mlrval) mlrval.Mlrval {
	av, bv, ok := bothInts(a, b)
	if !ok || bv == 0 {
		return mlrval.FromError("non-numeric argument")
	}
	m := av % bv
	if m != 0 && ((m < 0) != (bv < 0)) {
		m += bv
	}
	return mlrval.FromInt(m)
}

func Concat(a, b mlrval.Mlrval) mlrval.Mlrval {
	return mlrval.FromString(a.StringValue() + b.StringValue())
}

func UnaryPlus(a mlrval.Mlrval) mlrval.Mlrval  { return a }
func UnaryMinus(a mlrval.Mlrval) mlrval.Mlrval {
	if a.Type() == mlrval.Int {
		return mlrval.FromInt(-a.IntValue())
	}
	v, ok := a.Float64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromFloat(-v)
}

func BitAnd(a, b mlrval.Mlrval) mlrval.Mlrval {
	av, bv, ok := bothInts(a, b)
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromInt(av & bv)
}

func BitOr(a, b mlrval.Mlrval) mlrval.Mlrval {
	av, bv, ok := bothInts(a, b)
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromInt(av | bv)
}

func BitXor(a, b mlrval.Mlrval) mlrval.Mlrval {
	av, bv, ok := bothInts(a, b)
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromInt(av ^ bv)
}

func BitNot(a mlrval.Mlrval) mlrval.Mlrval {
	av, ok := a.Int64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromInt(^av)
}

func Shl(a, b mlrval.Mlrval) mlrval.Mlrval {
	av, bv, ok := bothInts(a, b)
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromInt(av << uint(bv))
}

func Shr(a, b mlrval.Mlrval) mlrval.Mlrval {
	av, bv, ok := bothInts(a, b)
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromInt(av >> uint(bv))
}
