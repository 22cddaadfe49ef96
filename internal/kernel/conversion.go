package kernel

import "github.com/jjdevbiz/miller/internal/mlrval"

func Boolean(a mlrval.Mlrval) mlrval.Mlrval {
	switch a.Type() {
	case mlrval.Bool:
		return a
	case mlrval.String:
		switch a.StringValue() {
		case "true":
			return mlrval.FromBool(true)
		case "false":
			return mlrval.FromBool(false)
		}
		return mlrval.FromError("cannot convert to boolean")
	case mlrval.Int:
		return mlrval.FromBool(a.IntValue() != 0)
	case mlrval.Float:
		return mlrval.FromBool(a.FloatValue() != 0)
	default:
		return mlrval.FromError("cannot convert to boolean")
	}
}

func Float(a mlrval.Mlrval) mlrval.Mlrval {
	if v, ok := a.Float64(); ok {
		return mlrval.FromFloat(v)
	}
	parsed := mlrval.FromInferredString(a.StringValue())
	if v, ok := parsed.Float64(); ok {
		return mlrval.FromFloat(v)
	}
	return mlrval.FromError("cannot convert to float")
}

func Int(a mlrval.Mlrval) mlrval.Mlrval {
	if v, ok := a.Int64(); ok {
		return mlrval.FromInt(v)
	}
	parsed := mlrval.FromInferredString(a.StringValue())
	if v, ok := parsed.Int64(); ok {
		return mlrval.FromInt(v)
	}
	return mlrval.FromError("cannot convert to int")
}

func StringConv(a mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromString(a.StringValue()) }

func Typeof(a mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromString(a.Type().String()) }
