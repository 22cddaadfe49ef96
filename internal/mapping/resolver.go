package mapping

import (
	"github.com/jjdevbiz/miller/internal/ast"
	"github.com/jjdevbiz/miller/internal/catalog"
	"github.com/jjdevbiz/miller/internal/kernel"
	"github.com/jjdevbiz/miller/internal/mlrval"
	"github.com/jjdevbiz/miller/internal/udf"
)

// resolve inspects the placeholder e currently wraps, builds the concrete
// node it should become, and swaps e's inner field in place so any parent
// already holding e needs no patching.
func (m *Manager) resolve(e *Evaluator) {
	u, ok := e.isUnresolved()
	if !ok {
		// Already resolved (or never a placeholder); resolve_all is
		// idempotent, so this is not an error.
		return
	}

	if defsite, found := m.udfs.Lookup(u.functionName); found {
		e.inner = m.resolveUDFCall(u, defsite)
		return
	}

	result, expected, variadic := catalog.CheckArity(u.functionName, u.userArity)
	switch result {
	case catalog.NoSuch:
		m.fatalf("function name not found: \"%s\".", u.functionName)
	case catalog.Fail:
		if u.functionName == "-" {
			m.fatalf("function \"-\" takes one argument or two; got %d.", u.userArity)
		}
		m.fatalf("function \"%s\" invoked with %d argument(s); expected %d.",
			u.functionName, u.userArity, expected)
	}

	switch {
	case variadic:
		e.inner = m.resolveVariadic(u)
	case u.userArity == 0:
		e.inner = m.resolveZary(u)
	case u.userArity == 1:
		e.inner = m.resolveUnary(u)
	case u.userArity == 2:
		e.inner = m.resolveBinary(u)
	case u.userArity == 3:
		e.inner = m.resolveTernary(u)
	default:
		m.fatalf("internal error: arity %d passed catalog check for \"%s\" but no dispatch arity matches.",
			u.userArity, u.functionName)
	}
}

// buildChild turns one AST argument node into a live evaluator, recursively
// triggering resolution for nested calls: a nested call's placeholder goes
// onto the same queue and is drained by the outer loop.
func (m *Manager) buildChild(n ast.Node) *Evaluator {
	switch v := n.(type) {
	case *ast.Call:
		return m.AllocFromOperatorOrFunctionCall(v, false, 0)
	case *ast.StringLiteral:
		return &Evaluator{inner: &literalNode{value: mlrval.FromString(v.Value)}}
	case *ast.NumericLiteral:
		return &Evaluator{inner: &literalNode{value: mlrval.FromInferredString(v.Text)}}
	case *ast.RegexLiteral:
		return &Evaluator{inner: &literalNode{value: mlrval.FromString(v.Pattern)}}
	case *ast.CaseInsensitiveRegexLiteral:
		return &Evaluator{inner: &literalNode{value: mlrval.FromString(v.Pattern)}}
	case *ast.FieldRef:
		return &Evaluator{inner: &fieldRefNode{name: v.Name}}
	default:
		m.fatalf("internal error: unrecognized AST node kind in function-argument position.")
		return nil
	}
}

func (m *Manager) buildChildren(nodes []ast.Node) []*Evaluator {
	children := make([]*Evaluator, len(nodes))
	for i, n := range nodes {
		children[i] = m.buildChild(n)
	}
	return children
}

// ---- UDF resolution -------------------------------------------------------

func (m *Manager) resolveUDFCall(u *unresolvedNode, defsite *udf.Defsite) node {
	if u.userArity != defsite.Arity {
		m.fatalf("user-defined function \"%s\" invoked with %d argument(s); defined with %d.",
			u.functionName, u.userArity, defsite.Arity)
	}
	children := m.buildChildren(u.astChildren)
	return &udfCall{
		defsiteState: defsite.State,
		callProcess:  udfProcess(defsite.Process),
		children:     children,
		scratch:      make([]mlrval.Mlrval, defsite.Arity),
	}
}

// ---- arity-specific dispatch ----------------------------------------------

func (m *Manager) resolveZary(u *unresolvedNode) node {
	switch u.functionName {
	case "urand":
		return &zaryNode{fn: func() mlrval.Mlrval { return kernel.Urand() }}
	case "urand32":
		return &zaryNode{fn: func() mlrval.Mlrval { return kernel.Urand32() }}
	case "systime":
		return &zaryNode{fn: func() mlrval.Mlrval { return kernel.Systime() }}
	}
	m.fatalf("internal error: unrecognized zero-argument function name \"%s\".", u.functionName)
	return nil
}

func (m *Manager) resolveVariadic(u *unresolvedNode) node {
	children := m.buildChildren(u.astChildren)
	switch u.functionName {
	case "min":
		return &variadicNode{fn: kernel.Min, args: children}
	case "max":
		return &variadicNode{fn: kernel.Max, args: children}
	}
	m.fatalf("internal error: unrecognized variadic function name \"%s\".", u.functionName)
	return nil
}

func (m *Manager) resolveUnary(u *unresolvedNode) node {
	fn, ok := unaryDispatch[u.functionName]
	if !ok {
		m.fatalf("internal error: unrecognized function name \"%s\".", u.functionName)
	}
	arg1 := m.buildChild(u.astChildren[0])
	return &unaryNode{fn: fn, arg1: arg1}
}

// resolveBinary handles every two-argument call, including the =~/!=~
// regex-literal specialization: when argument 2 is a string literal, a
// regex literal, or a case-insensitive regex literal, the pattern is
// compiled once here and only argument 1 is built as a child.
func (m *Manager) resolveBinary(u *unresolvedNode) node {
	name := u.functionName
	if name == "=~" || name == "!=~" {
		if pattern, caseFold, ok := ast.RegexText(u.astChildren[1]); ok {
			re, err := kernel.CompileRegex(pattern, caseFold)
			if err != nil {
				m.fatalf("invalid regular expression literal %q: %v", pattern, err)
			}
			arg1 := m.buildChild(u.astChildren[0])
			fn := kernel.MatchPrecompiled
			if name == "!=~" {
				fn = kernel.NotMatchPrecompiled
			}
			return &precompiledRegexBinaryNode{fn: fn, arg1: arg1, compiled: re}
		}
	}

	fn, ok := binaryDispatch[name]
	if !ok {
		m.fatalf("internal error: unrecognized function name \"%s\".", name)
	}
	arg1 := m.buildChild(u.astChildren[0])
	arg2 := m.buildChild(u.astChildren[1])
	return &binaryNode{fn: fn, arg1: arg1, arg2: arg2}
}

// resolveTernary handles every three-argument call, including the sub/gsub
// regex-literal specialization analogous to the binary case: argument 2's
// regex is compiled once, arguments 1 and 3 are built as children.
func (m *Manager) resolveTernary(u *unresolvedNode) node {
	name := u.functionName
	if name == "sub" || name == "gsub" {
		if pattern, caseFold, ok := ast.RegexText(u.astChildren[1]); ok {
			re, err := kernel.CompileRegex(pattern, caseFold)
			if err != nil {
				m.fatalf("invalid regular expression literal %q: %v", pattern, err)
			}
			arg1 := m.buildChild(u.astChildren[0])
			arg3 := m.buildChild(u.astChildren[2])
			fn := kernel.SubPrecompiled
			if name == "gsub" {
				fn = kernel.GsubPrecompiled
			}
			return &precompiledRegexTernaryNode{fn: fn, arg1: arg1, compiled: re, arg3: arg3}
		}
	}

	fn, ok := ternaryDispatch[name]
	if !ok {
		m.fatalf("internal error: unrecognized function name \"%s\".", name)
	}
	arg1 := m.buildChild(u.astChildren[0])
	arg2 := m.buildChild(u.astChildren[1])
	arg3 := m.buildChild(u.astChildren[2])
	return &ternaryNode{fn: fn, arg1: arg1, arg2: arg2, arg3: arg3}
}
