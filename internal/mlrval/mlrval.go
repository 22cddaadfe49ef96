// Package mlrval implements the tagged-union value type that flows through
// every evaluator node's process() call: the kernels and evaluator tree
// operate on this concrete representation rather than an opaque interface.
package mlrval

import "strconv"

// Type tags the kind of value a Mlrval carries.
type Type int

const (
	Absent Type = iota
	Empty
	Error
	Bool
	Int
	Float
	String
)

func (t Type) String() string {
	switch t {
	case Absent:
		return "absent"
	case Empty:
		return "empty"
	case Error:
		return "error"
	case Bool:
		return "boolean"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Mlrval is the tagged union carrying absent, empty, bool, int, float, and
// string values, plus an error tag for kernel failures that must flow
// through the record rather than abort the process.
type Mlrval struct {
	typ Type
	b   bool
	i   int64
	f   float64
	s   string
}

func FromAbsent() Mlrval { return Mlrval{typ: Absent} }
func FromEmpty() Mlrval  { return Mlrval{typ: Empty} }
func FromError(msg string) Mlrval {
	return Mlrval{typ: Error, s: msg}
}
func FromBool(b bool) Mlrval    { return Mlrval{typ: Bool, b: b} }
func FromInt(i int64) Mlrval    { return Mlrval{typ: Int, i: i} }
func FromFloat(f float64) Mlrval { return Mlrval{typ: Float, f: f} }
func FromString(s string) Mlrval { return Mlrval{typ: String, s: s} }

// FromInferredString type-infers a raw field value the way a record reader
// hands fields to the DSL: int-looking, then float-looking, else string.
// This is the one piece of type inference performed on literals; it does
// not replace the kernels' own coercion at call time.
func FromInferredString(s string) Mlrval {
	if s == "" {
		return FromEmpty()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FromFloat(f)
	}
	return FromString(s)
}

func (m Mlrval) Type() Type     { return m.typ }
func (m Mlrval) IsAbsent() bool { return m.typ == Absent }
func (m Mlrval) IsEmpty() bool  { return m.typ == Empty }
func (m Mlrval) IsError() bool  { return m.typ == Error }

func (m Mlrval) BoolValue() bool     { return m.b }
func (m Mlrval) IntValue() int64     { return m.i }
func (m Mlrval) FloatValue() float64 { return m.f }

// StringValue renders any tag as its DSL string representation.
func (m Mlrval) StringValue() string {
	switch m.typ {
	case Absent:
		return ""
	case Empty:
		return ""
	case Error:
		return "(error)"
	case Bool:
		if m.b {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(m.i, 10)
	case Float:
		return strconv.FormatFloat(m.f, 'f', -1, 64)
	case String:
		return m.s
	default:
		return ""
	}
}

// Float64 widens int or float tags to a float64 for arithmetic kernels;
// any other tag yields (0, false).
func (m Mlrval) Float64() (float64, bool) {
	switch m.typ {
	case Int:
		return float64(m.i), true
	case Float:
		return m.f, true
	default:
		return 0, false
	}
}

// Int64 narrows a float tag to an int64 when it carries no fractional part,
// and passes an int tag through unchanged.
func (m Mlrval) Int64() (int64, bool) {
	switch m.typ {
	case Int:
		return m.i, true
	case Float:
		if m.f == float64(int64(m.f)) {
			return int64(m.f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func (m Mlrval) IsNumeric() bool { return m.typ == Int || m.typ == Float }
