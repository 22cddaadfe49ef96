// Package ast is the contract the function manager consumes from the
// tokenizer/parser. The real parser is out of scope for this core; this
// package only fixes the shape any parser must produce for a call-shaped
// node: a function name, an ordered list of argument nodes, and a
// per-node kind that the resolver inspects to decide whether an argument
// is a literal regex.
//
// The node shapes are a small, one-struct-per-kind AST, generalized to
// the two things the resolver needs: call nodes and literal nodes.
package ast

// Kind is the closed set of node kinds the resolver distinguishes.
type Kind int

const (
	KindCall Kind = iota
	KindStringLiteral
	KindNumericLiteral
	KindRegexLiteral
	KindCaseInsensitiveRegexLiteral
	KindOther
)

// Node is the minimal shape the resolver needs from any AST node: its kind,
// and — for a call node — its function name and ordered children.
type Node interface {
	Kind() Kind
}

// Call is a call-shaped node: text is the function or operator name,
// Children are its argument nodes in source order.
type Call struct {
	Text     string
	Children []Node
}

func (c *Call) Kind() Kind { return KindCall }

// StringLiteral is a quoted string literal argument, e.g. "foo".
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) Kind() Kind { return KindStringLiteral }

// NumericLiteral is a bare numeric literal argument.
type NumericLiteral struct {
	Text string
}

func (n *NumericLiteral) Kind() Kind { return KindNumericLiteral }

// RegexLiteral is a bare (case-sensitive) regex literal argument, e.g. the
// second argument of `$a =~ "^x.*y$"` when the parser recognizes it as a
// regex rather than a plain string.
type RegexLiteral struct {
	Pattern string
}

func (r *RegexLiteral) Kind() Kind { return KindRegexLiteral }

// CaseInsensitiveRegexLiteral is a regex literal with an "i" case-fold
// suffix, e.g. `"^x.*y$"i`.
type CaseInsensitiveRegexLiteral struct {
	Pattern string
}

func (r *CaseInsensitiveRegexLiteral) Kind() Kind { return KindCaseInsensitiveRegexLiteral }

// FieldRef is a record field reference, e.g. $a. It is the common
// non-literal leaf argument: the resolver builds a child evaluator from it
// but never inspects it for regex-literal specialization.
type FieldRef struct {
	Name string
}

func (f *FieldRef) Kind() Kind { return KindOther }

// RegexText extracts the literal pattern and case-fold flag from a
// regex-literal-shaped argument: a regex literal, a case-insensitive regex
// literal (caseFold=true), or a plain string literal (caseFold=false). It
// returns ok=false for any other kind; the decision rests on the AST kind
// alone, not on the text of the pattern.
func RegexText(n Node) (pattern string, caseFold bool, ok bool) {
	switch v := n.(type) {
	case *RegexLiteral:
		return v.Pattern, false, true
	case *CaseInsensitiveRegexLiteral:
		return v.Pattern, true, true
	case *StringLiteral:
		return v.Value, false, true
	default:
		return "", false, false
	}
}
