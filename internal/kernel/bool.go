package kernel

import "github.com/jjdevbiz/miller/internal/mlrval"

func Not(a mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromBool(!a.BoolValue()) }

func And(a, b mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromBool(a.BoolValue() && b.BoolValue()) }
func Or(a, b mlrval.Mlrval) mlrval.Mlrval  { return mlrval.FromBool(a.BoolValue() || b.BoolValue()) }
func Xor(a, b mlrval.Mlrval) mlrval.Mlrval {
	return mlrval.FromBool(a.BoolValue() != b.BoolValue())
}

// EqOp is the general equality comparator used by "==". Numeric operands
// compare by value across int/float; everything else compares by string
// rendering.
func EqOp(a, b mlrval.Mlrval) mlrval.Mlrval {
	if a.IsNumeric() && b.IsNumeric() {
		av, _ := a.Float64()
		bv, _ := b.Float64()
		return mlrval.FromBool(av == bv)
	}
	return mlrval.FromBool(a.StringValue() == b.StringValue())
}

func NeOp(a, b mlrval.Mlrval) mlrval.Mlrval {
	eq := EqOp(a, b)
	return mlrval.FromBool(!eq.BoolValue())
}

func compareNumericOrString(a, b mlrval.Mlrval) int {
	if a.IsNumeric() && b.IsNumeric() {
		av, _ := a.Float64()
		bv, _ := b.Float64()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
	as, bs := a.StringValue(), b.StringValue()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func Gt(a, b mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromBool(compareNumericOrString(a, b) > 0) }
func Ge(a, b mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromBool(compareNumericOrString(a, b) >= 0) }
func Lt(a, b mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromBool(compareNumericOrString(a, b) < 0) }
func Le(a, b mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromBool(compareNumericOrString(a, b) <= 0) }

func Ternary(cond, t, f mlrval.Mlrval) mlrval.Mlrval {
	if cond.BoolValue() {
		return t
	}
	return f
}

// Predicates (unary).
func IsAbsent(a mlrval.Mlrval) mlrval.Mlrval    { return mlrval.FromBool(a.IsAbsent()) }
func IsEmpty(a mlrval.Mlrval) mlrval.Mlrval     { return mlrval.FromBool(a.IsEmpty()) }
func IsNotEmpty(a mlrval.Mlrval) mlrval.Mlrval  { return mlrval.FromBool(!a.IsEmpty()) }
func IsNotNull(a mlrval.Mlrval) mlrval.Mlrval   { return mlrval.FromBool(!a.IsAbsent() && !a.IsEmpty()) }
func IsNull(a mlrval.Mlrval) mlrval.Mlrval      { return mlrval.FromBool(a.IsAbsent() || a.IsEmpty()) }
func IsPresent(a mlrval.Mlrval) mlrval.Mlrval   { return mlrval.FromBool(!a.IsAbsent()) }
func IsNumeric(a mlrval.Mlrval) mlrval.Mlrval   { return mlrval.FromBool(a.IsNumeric()) }
func IsInt(a mlrval.Mlrval) mlrval.Mlrval       { return mlrval.FromBool(a.Type() == mlrval.Int) }
func IsFloat(a mlrval.Mlrval) mlrval.Mlrval     { return mlrval.FromBool(a.Type() == mlrval.Float) }
func IsBool(a mlrval.Mlrval) mlrval.Mlrval      { return mlrval.FromBool(a.Type() == mlrval.Bool) }
func IsString(a mlrval.Mlrval) mlrval.Mlrval    { return mlrval.FromBool(a.Type() == mlrval.String) }
