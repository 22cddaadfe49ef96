// Package mapping resolves named operators and functions, built-in and
// user-defined, into a tree of per-record evaluator nodes: an
// unresolved-callsite queue, a resolver that dispatches by name and arity,
// and the evaluator nodes themselves, tied together by the Manager, which
// also owns the UDF registry (package udf) and consults the function
// catalog (package catalog).
package mapping

import (
	"github.com/pkg/errors"

	"github.com/jjdevbiz/miller/internal/ast"
	"github.com/jjdevbiz/miller/internal/mlrval"
)

// node is the polymorphic evaluator contract. Built-in shapes are a closed
// tagged set (literal, field-ref, unary/binary/ternary/variadic builtin,
// precompiled-regex binary/ternary); UDF callsites are the one open
// variant, carrying a reference into the UDF registry rather than a fixed
// operation.
type node interface {
	process(vars *mlrval.Vars) mlrval.Mlrval
	drop()
}

// Evaluator is an indirection cell around a node: AllocFromOperatorOrFunctionCall
// hands back an *Evaluator whose inner node starts as an unresolved
// placeholder, and ResolveAll swaps inner in place so that any parent
// already holding this *Evaluator needs no patching once resolution
// finishes, even across forward references between UDFs.
type Evaluator struct {
	inner node
}

// Process evaluates the node against vars. Calling it before resolution is
// a programmer error.
func (e *Evaluator) Process(vars *mlrval.Vars) mlrval.Mlrval {
	return e.inner.process(vars)
}

// Drop releases the evaluator and everything it owns.
func (e *Evaluator) Drop() { e.inner.drop() }

func (e *Evaluator) isUnresolved() (*unresolvedNode, bool) {
	u, ok := e.inner.(*unresolvedNode)
	return u, ok
}

// ---- unresolved placeholder ----------------------------------------------

type unresolvedNode struct {
	functionName    string
	userArity       int
	typeInferencing bool
	contextFlags    int
	astChildren     []ast.Node // raw AST children, not yet built
}

// process on a placeholder is a programmer error: every placeholder must
// be resolved before any evaluator tree it is part of is run. The panic
// value is wrapped with github.com/pkg/errors so it carries a stack trace.
func (u *unresolvedNode) process(vars *mlrval.Vars) mlrval.Mlrval {
	panic(errors.Errorf("internal error: process() called on unresolved callsite %q before resolve_all", u.functionName))
}

func (u *unresolvedNode) drop() {}

// ---- literal / field-reference leaves ------------------------------------

type literalNode struct {
	value mlrval.Mlrval
}

func (l *literalNode) process(vars *mlrval.Vars) mlrval.Mlrval { return l.value }
func (l *literalNode) drop()                                   {}

type fieldRefNode struct {
	name string
}

func (f *fieldRefNode) process(vars *mlrval.Vars) mlrval.Mlrval { return vars.Get(f.name) }
func (f *fieldRefNode) drop()                                    {}

// ---- built-in operation nodes --------------------------------------------

type zaryNode struct {
	fn func() mlrval.Mlrval
}

func (z *zaryNode) process(vars *mlrval.Vars) mlrval.Mlrval { return z.fn() }
func (z *zaryNode) drop()                                    {}

type unaryNode struct {
	fn   func(mlrval.Mlrval) mlrval.Mlrval
	arg1 *Evaluator
}

func (u *unaryNode) process(vars *mlrval.Vars) mlrval.Mlrval {
	return u.fn(u.arg1.Process(vars))
}
func (u *unaryNode) drop() { u.arg1.Drop() }

type binaryNode struct {
	fn   func(a, b mlrval.Mlrval) mlrval.Mlrval
	arg1 *Evaluator
	arg2 *Evaluator
}

func (b *binaryNode) process(vars *mlrval.Vars) mlrval.Mlrval {
	return b.fn(b.arg1.Process(vars), b.arg2.Process(vars))
}
func (b *binaryNode) drop() { b.arg1.Drop(); b.arg2.Drop() }

type ternaryNode struct {
	fn   func(a, b, c mlrval.Mlrval) mlrval.Mlrval
	arg1 *Evaluator
	arg2 *Evaluator
	arg3 *Evaluator
}

func (t *ternaryNode) process(vars *mlrval.Vars) mlrval.Mlrval {
	return t.fn(t.arg1.Process(vars), t.arg2.Process(vars), t.arg3.Process(vars))
}
func (t *ternaryNode) drop() { t.arg1.Drop(); t.arg2.Drop(); t.arg3.Drop() }

type variadicNode struct {
	fn   func([]mlrval.Mlrval) mlrval.Mlrval
	args []*Evaluator
}

func (v *variadicNode) process(vars *mlrval.Vars) mlrval.Mlrval {
	values := make([]mlrval.Mlrval, len(v.args))
	for i, a := range v.args {
		values[i] = a.Process(vars)
	}
	return v.fn(values)
}
func (v *variadicNode) drop() {
	for _, a := range v.args {
		a.Drop()
	}
}

// ---- precompiled-regex specializations -----------------------------------
// =~, !=~, sub, and gsub compile their literal-regex argument exactly
// once, at resolution time, instead of per record.

type precompiledRegexBinaryNode struct {
	fn       func(s mlrval.Mlrval, re regexMatcher) mlrval.Mlrval
	arg1     *Evaluator
	compiled regexMatcher
}

func (p *precompiledRegexBinaryNode) process(vars *mlrval.Vars) mlrval.Mlrval {
	return p.fn(p.arg1.Process(vars), p.compiled)
}
func (p *precompiledRegexBinaryNode) drop() { p.arg1.Drop() }

type precompiledRegexTernaryNode struct {
	fn       func(s mlrval.Mlrval, re regexMatcher, repl mlrval.Mlrval) mlrval.Mlrval
	arg1     *Evaluator
	compiled regexMatcher
	arg3     *Evaluator
}

func (p *precompiledRegexTernaryNode) process(vars *mlrval.Vars) mlrval.Mlrval {
	return p.fn(p.arg1.Process(vars), p.compiled, p.arg3.Process(vars))
}
func (p *precompiledRegexTernaryNode) drop() { p.arg1.Drop(); p.arg3.Drop() }

// ---- UDF callsite ---------------------------------------------------------

// udfCall is the one open evaluator variant: it owns a non-owning reference
// to the registry's defsite, its built child evaluators, and a reusable
// argument scratch buffer sized to the call's own arity. The defsite state
// itself is owned by the UDF registry, not this callsite, so udfCall.drop
// only releases its own children.
type udfCall struct {
	defsiteState interface{}
	callProcess  udfProcess
	children     []*Evaluator
	scratch      []mlrval.Mlrval
}

type udfProcess func(state interface{}, args []mlrval.Mlrval, vars *mlrval.Vars) mlrval.Mlrval

// process evaluates each child into the reused scratch buffer, then
// invokes the definition site.
func (u *udfCall) process(vars *mlrval.Vars) mlrval.Mlrval {
	for i, c := range u.children {
		u.scratch[i] = c.Process(vars)
	}
	return u.callProcess(u.defsiteState, u.scratch, vars)
}

func (u *udfCall) drop() {
	for _, c := range u.children {
		c.Drop()
	}
}
