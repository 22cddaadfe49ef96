package mapping

import (
	"github.com/jjdevbiz/miller/internal/kernel"
	"github.com/jjdevbiz/miller/internal/mlrval"
)

// unaryDispatch, binaryDispatch, and ternaryDispatch bind every non-variadic,
// non-zero-arity catalog name to its kernel implementation. =~/!=~/sub/gsub
// appear here too, as the dynamic fallback used when argument 2 is not a
// literal regex — resolveBinary/resolveTernary check the literal-regex
// case first and only fall through to these maps otherwise.
var unaryDispatch = map[string]func(mlrval.Mlrval) mlrval.Mlrval{
	"+": kernel.UnaryPlus,
	"-": kernel.UnaryMinus,
	"~": kernel.BitNot,
	"!": kernel.Not,

	"abs":      kernel.Abs,
	"acos":     kernel.Acos,
	"acosh":    kernel.Acosh,
	"asin":     kernel.Asin,
	"asinh":    kernel.Asinh,
	"atan":     kernel.Atan,
	"atanh":    kernel.Atanh,
	"cbrt":     kernel.Cbrt,
	"ceil":     kernel.Ceil,
	"cos":      kernel.Cos,
	"cosh":     kernel.Cosh,
	"erf":      kernel.Erf,
	"erfc":     kernel.Erfc,
	"exp":      kernel.Exp,
	"expm1":    kernel.Expm1,
	"floor":    kernel.Floor,
	"invqnorm": kernel.InvQnorm,
	"log":      kernel.Log,
	"log10":    kernel.Log10,
	"log1p":    kernel.Log1p,
	"qnorm":    kernel.Qnorm,
	"round":    kernel.Round,
	"sgn":      kernel.Sgn,
	"sin":      kernel.Sin,
	"sinh":     kernel.Sinh,
	"sqrt":     kernel.Sqrt,
	"tan":      kernel.Tan,
	"tanh":     kernel.Tanh,

	"isabsent":   kernel.IsAbsent,
	"isempty":    kernel.IsEmpty,
	"isnotempty": kernel.IsNotEmpty,
	"isnotnull":  kernel.IsNotNull,
	"isnull":     kernel.IsNull,
	"ispresent":  kernel.IsPresent,
	"isnumeric":  kernel.IsNumeric,
	"isint":      kernel.IsInt,
	"isfloat":    kernel.IsFloat,
	"isbool":     kernel.IsBool,
	"isstring":   kernel.IsString,

	"strlen":  kernel.Strlen,
	"tolower": kernel.ToLower,
	"toupper": kernel.ToUpper,
	"hexfmt":  kernel.Hexfmt,

	"boolean": kernel.Boolean,
	"float":   kernel.Float,
	"int":     kernel.Int,
	"string":  kernel.StringConv,
	"typeof":  kernel.Typeof,

	"sec2dhms":    kernel.Sec2Dhms,
	"sec2gmt":     kernel.Sec2Gmt,
	"sec2gmtdate": kernel.Sec2GmtDate,
	"sec2hms":     kernel.Sec2Hms,
	"gmt2sec":     kernel.Gmt2Sec,
	"dhms2fsec":   kernel.Dhms2Fsec,
	"dhms2sec":    kernel.Dhms2Sec,
	"hms2fsec":    kernel.Hms2Fsec,
	"hms2sec":     kernel.Hms2Sec,
	"fsec2dhms":   kernel.Fsec2Dhms,
	"fsec2hms":    kernel.Fsec2Hms,
}

var binaryDispatch = map[string]func(a, b mlrval.Mlrval) mlrval.Mlrval{
	"+":   kernel.Add,
	"-":   kernel.Sub,
	"*":   kernel.Mul,
	"/":   kernel.Div,
	"//":  kernel.IntDiv,
	"%":   kernel.Mod,
	"**":  kernel.Pow,
	"pow": kernel.Pow,
	".":   kernel.Concat,
	"&":   kernel.BitAnd,
	"|":   kernel.BitOr,
	"^":   kernel.BitXor,
	"<<":  kernel.Shl,
	">>":  kernel.Shr,

	"atan2":    kernel.Atan2,
	"roundm":   kernel.RoundM,
	"urandint": kernel.Urandint,

	"&&":  kernel.And,
	"||":  kernel.Or,
	"^^":  kernel.Xor,
	"==":  kernel.EqOp,
	"!=":  kernel.NeOp,
	">":   kernel.Gt,
	">=":  kernel.Ge,
	"<":   kernel.Lt,
	"<=":  kernel.Le,
	"=~":  kernel.MatchDynamic,
	"!=~": kernel.NotMatchDynamic,

	"fmtnum": kernel.FmtNum,

	"strftime": kernel.Strftime,
	"strptime": kernel.Strptime,
}

var ternaryDispatch = map[string]func(a, b, c mlrval.Mlrval) mlrval.Mlrval{
	"madd":    kernel.Madd,
	"msub":    kernel.Msub,
	"mmul":    kernel.Mmul,
	"mexp":    kernel.Mexp,
	"logifit": kernel.Logifit,
	"?:":      kernel.Ternary,
	"sub":     kernel.SubDynamic,
	"gsub":    kernel.GsubDynamic,
	"substr":  kernel.Substr,
}
