package mapping

import "regexp"

// regexMatcher is the compiled form a precompiled-regex node retains for
// its lifetime. It is just *regexp.Regexp; the alias exists so evaluator.go
// reads in terms of the domain concept rather than the stdlib type.
type regexMatcher = *regexp.Regexp
