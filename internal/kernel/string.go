package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jjdevbiz/miller/internal/mlrval"
)

func Strlen(a mlrval.Mlrval) mlrval.Mlrval {
	return mlrval.FromInt(int64(utf8.RuneCountInString(a.StringValue())))
}

func ToLower(a mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromString(strings.ToLower(a.StringValue())) }
func ToUpper(a mlrval.Mlrval) mlrval.Mlrval { return mlrval.FromString(strings.ToUpper(a.StringValue())) }

// Substr implements 0-up, inclusive-inclusive substr(s,m,n) the way
// Miller's string kernel does: negative indices count from the end.
func Substr(s, m, n mlrval.Mlrval) mlrval.Mlrval {
	runes := []rune(s.StringValue())
	length := len(runes)
	mi, ok1 := m.Int64()
	ni, ok2 := n.Int64()
	if !ok1 || !ok2 {
		return mlrval.FromError("non-numeric argument")
	}
	lo := normalizeIndex(int(mi), length)
	hi := normalizeIndex(int(ni), length)
	if lo > hi || lo >= length || hi < 0 {
		return mlrval.FromString("")
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= length {
		hi = length - 1
	}
	return mlrval.FromString(string(runes[lo : hi+1]))
}

func normalizeIndex(i, length int) int {
	if i < 0 {
		return length + i
	}
	return i
}

// FmtNum formats x per a printf-style numeric format string, e.g. "%.4f".
func FmtNum(x, format mlrval.Mlrval) mlrval.Mlrval {
	f, ok := x.Float64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	spec := format.StringValue()
	if strings.ContainsAny(spec, "dioxX") {
		return mlrval.FromString(fmt.Sprintf(spec, int64(f)))
	}
	return mlrval.FromString(fmt.Sprintf(spec, f))
}

// Hexfmt formats x as a 0x-prefixed hexadecimal integer.
func Hexfmt(x mlrval.Mlrval) mlrval.Mlrval {
	v, ok := x.Int64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	if v < 0 {
		return mlrval.FromString("-0x" + strconv.FormatInt(-v, 16))
	}
	return mlrval.FromString("0x" + strconv.FormatInt(v, 16))
}
