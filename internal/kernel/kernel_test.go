package kernel

import (
	"regexp"
	"testing"

	"github.com/jjdevbiz/miller/internal/mlrval"
)

func TestArithmeticStaysIntegral(t *testing.T) {
	result := Add(mlrval.FromInt(2), mlrval.FromInt(3))
	if result.Type() != mlrval.Int || result.IntValue() != 5 {
		t.Fatalf("Add(2,3) = %v, want int 5", result)
	}
}

func TestUnaryMinus(t *testing.T) {
	got := UnaryMinus(mlrval.FromInt(3))
	if got.Type() != mlrval.Int || got.IntValue() != -3 {
		t.Fatalf("UnaryMinus(3) = %v, want -3", got)
	}
}

func TestMatchPrecompiledCompilesOnce(t *testing.T) {
	re, err := CompileRegex("^x.*y$", false)
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	if !MatchPrecompiled(mlrval.FromString("xfooy"), re).BoolValue() {
		t.Fatalf("expected xfooy to match ^x.*y$")
	}
	if MatchPrecompiled(mlrval.FromString("nope"), re).BoolValue() {
		t.Fatalf("expected nope to not match ^x.*y$")
	}
}

func TestGsubPrecompiled(t *testing.T) {
	re := regexp.MustCompile("a")
	got := GsubPrecompiled(mlrval.FromString("banana"), re, mlrval.FromString("b"))
	if got.StringValue() != "bbnbnb" {
		t.Fatalf("gsub(banana,a,b) = %q, want bbnbnb", got.StringValue())
	}
}

func TestMexpModularExponentiation(t *testing.T) {
	// 3**4 mod 5 == 81 mod 5 == 1
	got := Mexp(mlrval.FromInt(3), mlrval.FromInt(4), mlrval.FromInt(5))
	if got.IntValue() != 1 {
		t.Fatalf("Mexp(3,4,5) = %v, want 1", got)
	}
}

func TestSubstrNegativeIndices(t *testing.T) {
	got := Substr(mlrval.FromString("hello"), mlrval.FromInt(-3), mlrval.FromInt(-1))
	if got.StringValue() != "llo" {
		t.Fatalf("Substr(hello,-3,-1) = %q, want llo", got.StringValue())
	}
}

func TestSec2DhmsAndBack(t *testing.T) {
	got := Sec2Dhms(mlrval.FromInt(90061))
	if got.StringValue() != "1d01h01m01s" {
		t.Fatalf("Sec2Dhms(90061) = %q, want 1d01h01m01s", got.StringValue())
	}
	back := Dhms2Sec(got)
	if back.IntValue() != 90061 {
		t.Fatalf("Dhms2Sec(%q) = %v, want 90061", got.StringValue(), back.IntValue())
	}
}
