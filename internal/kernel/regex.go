package kernel

import (
	"regexp"

	"github.com/jjdevbiz/miller/internal/mlrval"
)

// CompileRegex compiles pattern once, honoring caseFold, for the
// precompiled-regex evaluator nodes built by the resolver. Callers own the
// lifetime of the returned matcher; it carries no other state.
func CompileRegex(pattern string, caseFold bool) (*regexp.Regexp, error) {
	if caseFold {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

// MatchPrecompiled is "=~" when the resolver has already compiled the
// pattern at resolution time.
func MatchPrecompiled(s mlrval.Mlrval, re *regexp.Regexp) mlrval.Mlrval {
	return mlrval.FromBool(re.MatchString(s.StringValue()))
}

func NotMatchPrecompiled(s mlrval.Mlrval, re *regexp.Regexp) mlrval.Mlrval {
	return mlrval.FromBool(!re.MatchString(s.StringValue()))
}

// MatchDynamic is "=~" for the unspecialized path, where argument 2 is not
// a literal regex and must be compiled per call.
func MatchDynamic(s, pattern mlrval.Mlrval) mlrval.Mlrval {
	re, err := regexp.Compile(pattern.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return mlrval.FromBool(re.MatchString(s.StringValue()))
}

func NotMatchDynamic(s, pattern mlrval.Mlrval) mlrval.Mlrval {
	result := MatchDynamic(s, pattern)
	if result.IsError() {
		return result
	}
	return mlrval.FromBool(!result.BoolValue())
}

// SubPrecompiled replaces the first match of a precompiled regex with repl
// ("sub" with a literal regex argument 2).
func SubPrecompiled(s mlrval.Mlrval, re *regexp.Regexp, repl mlrval.Mlrval) mlrval.Mlrval {
	done := false
	out := re.ReplaceAllStringFunc(s.StringValue(), func(m string) string {
		if done {
			return m
		}
		done = true
		return repl.StringValue()
	})
	return mlrval.FromString(out)
}

func GsubPrecompiled(s mlrval.Mlrval, re *regexp.Regexp, repl mlrval.Mlrval) mlrval.Mlrval {
	return mlrval.FromString(re.ReplaceAllLiteralString(s.StringValue(), repl.StringValue()))
}

// SubDynamic/GsubDynamic compile pattern per call, for the unspecialized
// ternary path.
func SubDynamic(s, pattern, repl mlrval.Mlrval) mlrval.Mlrval {
	re, err := regexp.Compile(pattern.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return SubPrecompiled(s, re, repl)
}

func GsubDynamic(s, pattern, repl mlrval.Mlrval) mlrval.Mlrval {
	re, err := regexp.Compile(pattern.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return GsubPrecompiled(s, re, repl)
}
