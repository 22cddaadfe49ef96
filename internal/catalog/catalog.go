// Package catalog is the static function catalog: the compile-time table
// of built-in operator/function metadata (name, class, arity, variadic
// flag, usage text) that the resolver consults for every callsite that is
// not a UDF.
package catalog

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// Class is the function's documentation grouping.
type Class string

const (
	Arithmetic Class = "arithmetic"
	Math       Class = "math"
	Boolean    Class = "boolean"
	String     Class = "string"
	Conversion Class = "conversion"
	Time       Class = "time"
)

// Entry is one row of the function lookup table. Multiple entries may share
// a Name with different Arity (notably unary/binary "+" and "-").
type Entry struct {
	Class    Class
	Name     string
	Arity    int
	Variadic bool
	Usage    string
}

// table is the static, process-wide function lookup table. It is never
// mutated after package init.
var table = []Entry{
	// Arithmetic
	{Arithmetic, "+", 1, false, "+x: unary plus."},
	{Arithmetic, "+", 2, false, "x+y: addition."},
	{Arithmetic, "-", 1, false, "-x: unary minus."},
	{Arithmetic, "-", 2, false, "x-y: subtraction."},
	{Arithmetic, "*", 2, false, "x*y: multiplication."},
	{Arithmetic, "/", 2, false, "x/y: division."},
	{Arithmetic, "//", 2, false, "x//y: integer division."},
	{Arithmetic, "%", 2, false, "x%y: remainder."},
	{Arithmetic, "**", 2, false, "x**y: exponentiation."},
	{Arithmetic, "pow", 2, false, "pow(x,y): exponentiation."},
	{Arithmetic, ".", 2, false, "x.y: string concatenation."},
	{Arithmetic, "&", 2, false, "x&y: bitwise AND."},
	{Arithmetic, "|", 2, false, "x|y: bitwise OR."},
	{Arithmetic, "^", 2, false, "x^y: bitwise XOR."},
	{Arithmetic, "~", 1, false, "~x: bitwise NOT."},
	{Arithmetic, "<<", 2, false, "x<<y: left shift."},
	{Arithmetic, ">>", 2, false, "x>>y: right shift."},
	{Arithmetic, "madd", 3, false, "madd(a,b,m): (a+b) mod m."},
	{Arithmetic, "msub", 3, false, "msub(a,b,m): (a-b) mod m."},
	{Arithmetic, "mmul", 3, false, "mmul(a,b,m): (a*b) mod m."},
	{Arithmetic, "mexp", 3, false, "mexp(a,b,m): (a**b) mod m."},

	// Math (unary)
	{Math, "abs", 1, false, "abs(x): absolute value."},
	{Math, "acos", 1, false, "acos(x): inverse cosine."},
	{Math, "acosh", 1, false, "acosh(x): inverse hyperbolic cosine."},
	{Math, "asin", 1, false, "asin(x): inverse sine."},
	{Math, "asinh", 1, false, "asinh(x): inverse hyperbolic sine."},
	{Math, "atan", 1, false, "atan(x): inverse tangent."},
	{Math, "atanh", 1, false, "atanh(x): inverse hyperbolic tangent."},
	{Math, "atan2", 2, false, "atan2(y,x): two-argument inverse tangent."},
	{Math, "cbrt", 1, false, "cbrt(x): cube root."},
	{Math, "ceil", 1, false, "ceil(x): ceiling."},
	{Math, "cos", 1, false, "cos(x): cosine."},
	{Math, "cosh", 1, false, "cosh(x): hyperbolic cosine."},
	{Math, "erf", 1, false, "erf(x): error function."},
	{Math, "erfc", 1, false, "erfc(x): complementary error function."},
	{Math, "exp", 1, false, "exp(x): e**x."},
	{Math, "expm1", 1, false, "expm1(x): e**x - 1."},
	{Math, "floor", 1, false, "floor(x): floor."},
	{Math, "invqnorm", 1, false, "invqnorm(x): inverse normal CDF."},
	{Math, "log", 1, false, "log(x): natural log."},
	{Math, "log10", 1, false, "log10(x): base-10 log."},
	{Math, "log1p", 1, false, "log1p(x): log(1+x)."},
	{Math, "qnorm", 1, false, "qnorm(x): normal CDF."},
	{Math, "round", 1, false, "round(x): round to nearest integer."},
	{Math, "roundm", 2, false, "roundm(x,m): round x to nearest multiple of m."},
	{Math, "sgn", 1, false, "sgn(x): sign, -1/0/1."},
	{Math, "sin", 1, false, "sin(x): sine."},
	{Math, "sinh", 1, false, "sinh(x): hyperbolic sine."},
	{Math, "sqrt", 1, false, "sqrt(x): square root."},
	{Math, "tan", 1, false, "tan(x): tangent."},
	{Math, "tanh", 1, false, "tanh(x): hyperbolic tangent."},
	{Math, "urand", 0, false, "urand(): uniform random in [0,1)."},
	{Math, "urand32", 0, false, "urand32(): uniform random uint32."},
	{Math, "urandint", 2, false, "urandint(lo,hi): uniform random integer in [lo,hi]."},
	{Math, "logifit", 3, false, "logifit(x,m,b): logistic fit 1/(1+exp(-m*x-b))."},
	{Math, "min", 0, true, "min(x,y,...): minimum of all arguments."},
	{Math, "max", 0, true, "max(x,y,...): maximum of all arguments."},

	// Boolean
	{Boolean, "!", 1, false, "!x: logical negation."},
	{Boolean, "&&", 2, false, "x&&y: logical AND."},
	{Boolean, "||", 2, false, "x||y: logical OR."},
	{Boolean, "^^", 2, false, "x^^y: logical XOR."},
	{Boolean, "==", 2, false, "x==y: equality."},
	{Boolean, "!=", 2, false, "x!=y: inequality."},
	{Boolean, ">", 2, false, "x>y: greater than."},
	{Boolean, ">=", 2, false, "x>=y: greater than or equal."},
	{Boolean, "<", 2, false, "x<y: less than."},
	{Boolean, "<=", 2, false, "x<=y: less than or equal."},
	{Boolean, "=~", 2, false, "x=~y: regex match."},
	{Boolean, "!=~", 2, false, "x!=~y: regex non-match."},
	{Boolean, "?:", 3, false, "cond ? a : b: ternary conditional."},

	// Predicates (unary, dispatched as boolean-class functions)
	{Boolean, "isabsent", 1, false, "isabsent(x): true if x is absent."},
	{Boolean, "isempty", 1, false, "isempty(x): true if x is empty."},
	{Boolean, "isnotempty", 1, false, "isnotempty(x): true if x is not empty."},
	{Boolean, "isnotnull", 1, false, "isnotnull(x): true if x is neither absent nor empty."},
	{Boolean, "isnull", 1, false, "isnull(x): true if x is absent or empty."},
	{Boolean, "ispresent", 1, false, "ispresent(x): true if x is not absent."},
	{Boolean, "isnumeric", 1, false, "isnumeric(x): true if x is int or float."},
	{Boolean, "isint", 1, false, "isint(x): true if x is int."},
	{Boolean, "isfloat", 1, false, "isfloat(x): true if x is float."},
	{Boolean, "isbool", 1, false, "isbool(x): true if x is boolean."},
	{Boolean, "isstring", 1, false, "isstring(x): true if x is string."},

	// String
	{String, "strlen", 1, false, "strlen(s): length of s in characters."},
	{String, "tolower", 1, false, "tolower(s): lowercase s."},
	{String, "toupper", 1, false, "toupper(s): uppercase s."},
	{String, "sub", 3, false, "sub(s,r,t): replace first match of r in s with t."},
	{String, "gsub", 3, false, "gsub(s,r,t): replace all matches of r in s with t."},
	{String, "substr", 3, false, "substr(s,m,n): substring from index m to n."},
	{String, "fmtnum", 2, false, "fmtnum(x,fmt): format x per a printf-style format."},
	{String, "hexfmt", 1, false, "hexfmt(x): format x as 0x-prefixed hex."},

	// Conversion
	{Conversion, "boolean", 1, false, "boolean(x): convert x to boolean."},
	{Conversion, "float", 1, false, "float(x): convert x to float."},
	{Conversion, "int", 1, false, "int(x): convert x to int."},
	{Conversion, "string", 1, false, "string(x): convert x to string."},
	{Conversion, "typeof", 1, false, "typeof(x): name of x's type."},

	// Time
	{Time, "systime", 0, false, "systime(): current time as float seconds since epoch."},
	{Time, "dhms2fsec", 1, false, "dhms2fsec(s): dhms string to float seconds."},
	{Time, "dhms2sec", 1, false, "dhms2sec(s): dhms string to integer seconds."},
	{Time, "fsec2dhms", 1, false, "fsec2dhms(x): float seconds to dhms string."},
	{Time, "fsec2hms", 1, false, "fsec2hms(x): float seconds to hms string."},
	{Time, "gmt2sec", 1, false, "gmt2sec(s): GMT timestamp string to seconds."},
	{Time, "hms2fsec", 1, false, "hms2fsec(s): hms string to float seconds."},
	{Time, "hms2sec", 1, false, "hms2sec(s): hms string to integer seconds."},
	{Time, "sec2dhms", 1, false, "sec2dhms(x): integer seconds to dhms string."},
	{Time, "sec2gmt", 1, false, "sec2gmt(x): seconds since epoch to GMT timestamp string."},
	{Time, "sec2gmtdate", 1, false, "sec2gmtdate(x): seconds since epoch to GMT date string."},
	{Time, "sec2hms", 1, false, "sec2hms(x): integer seconds to hms string."},
	{Time, "strftime", 2, false, "strftime(x,fmt): format seconds-since-epoch x per fmt."},
	{Time, "strptime", 2, false, "strptime(s,fmt): parse s per fmt into seconds since epoch."},
}

// ArityResult is the outcome of checking a user-provided arity against the
// catalog.
type ArityResult int

const (
	Pass ArityResult = iota
	Fail
	NoSuch
)

// CheckArity checks a user-provided arity against every catalog row for
// name. expected is the last-seen declared arity for name when the result
// is Fail (used for the diagnostic); variadic reports whether any
// matching row was variadic.
func CheckArity(name string, userArity int) (result ArityResult, expected int, variadic bool) {
	found := false
	lastArity := 0
	for _, e := range table {
		if e.Name != name {
			continue
		}
		found = true
		if e.Variadic {
			return Pass, 0, true
		}
		lastArity = e.Arity
		if e.Arity == userArity {
			return Pass, e.Arity, false
		}
	}
	if !found {
		return NoSuch, 0, false
	}
	return Fail, lastArity, false
}

// Lookup returns the catalog row for name at the given arity, if any. It is
// a convenience for callers that already know CheckArity passed.
func Lookup(name string, arity int) (Entry, bool) {
	for _, e := range table {
		if e.Name == name && (e.Variadic || e.Arity == arity) {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns every distinct built-in name in the catalog, in table
// order with duplicates (from multi-arity entries) collapsed.
func Names() []string {
	seen := make(map[string]bool, len(table))
	names := make([]string, 0, len(table))
	for _, e := range table {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// List writes an 80-column wrapped, space-separated list of names to w,
// with leader printed at the start of every wrapped line.
func List(w io.Writer, leader string, names []string) {
	const width = 80
	line := leader
	first := true
	for _, name := range names {
		candidate := name
		if !first {
			candidate = " " + name
		}
		if len(line)+len(candidate) > width && line != leader {
			fmt.Fprintln(w, line)
			line = leader + name
			first = false
			continue
		}
		line += candidate
		first = false
	}
	if strings.TrimSpace(line) != strings.TrimSpace(leader) || line != leader {
		fmt.Fprintln(w, line)
	}
}

// Usage writes the `function_usage` report for one name, or for every name
// when name == "". For "all" it appends a trailing note about --seed and
// the built-in variables and math constants.
func Usage(w io.Writer, name string) {
	if name == "" {
		sorted := append([]Entry(nil), table...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
		for _, e := range sorted {
			printEntry(w, e)
		}
		fmt.Fprintf(w, "\n%s functions shown above.\n", humanize.Comma(int64(len(Names()))))
		fmt.Fprintln(w, "Use --seed to seed urand/urand32/urandint for reproducible output.")
		fmt.Fprintln(w, "Built-in variables: NF, NR, FNR, FILENUM, FILENAME.")
		fmt.Fprintln(w, "Math constants: PI, E.")
		return
	}
	any := false
	for _, e := range table {
		if e.Name == name {
			printEntry(w, e)
			any = true
		}
	}
	if !any {
		fmt.Fprintf(w, "%s: no such function.\n", name)
	}
}

func printEntry(w io.Writer, e Entry) {
	if e.Variadic {
		fmt.Fprintf(w, "%s (class=%s variadic): %s\n", e.Name, e.Class, e.Usage)
	} else {
		fmt.Fprintf(w, "%s (class=%s #args=%d): %s\n", e.Name, e.Class, e.Arity, e.Usage)
	}
}
