package mapping

import (
	"testing"

	"github.com/jjdevbiz/miller/internal/ast"
	"github.com/jjdevbiz/miller/internal/mlrval"
	"github.com/jjdevbiz/miller/internal/udf"
)

func num(text string) ast.Node  { return &ast.NumericLiteral{Text: text} }
func field(name string) ast.Node { return &ast.FieldRef{Name: name} }

func TestEndToEndArithmetic(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{Text: "+", Children: []ast.Node{num("1"), num("2")}}, false, 0)
	m.ResolveAll()

	got := e.Process(mlrval.NewVars())
	if v, ok := got.Int64(); !ok || v != 3 {
		t.Fatalf("1+2 = %v, want 3", got)
	}
}

func TestUnaryAndBinaryMinusDispatch(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	unary := m.AllocFromOperatorOrFunctionCall(&ast.Call{Text: "-", Children: []ast.Node{num("5")}}, false, 0)
	binary := m.AllocFromOperatorOrFunctionCall(&ast.Call{Text: "-", Children: []ast.Node{num("5"), num("2")}}, false, 0)
	m.ResolveAll()

	vars := mlrval.NewVars()
	if v, ok := unary.Process(vars).Int64(); !ok || v != -5 {
		t.Fatalf("-5 = %v, want -5", v)
	}
	if v, ok := binary.Process(vars).Int64(); !ok || v != 3 {
		t.Fatalf("5-2 = %v, want 3", v)
	}
}

func TestRegexLiteralSpecializationBinary(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{
		Text:     "=~",
		Children: []ast.Node{field("a"), &ast.RegexLiteral{Pattern: "^x.*y$"}},
	}, false, 0)
	m.ResolveAll()

	if _, ok := e.inner.(*precompiledRegexBinaryNode); !ok {
		t.Fatalf("=~ with a regex literal did not specialize, got %T", e.inner)
	}

	vars := mlrval.NewVars()
	vars.Set("a", mlrval.FromString("xzzzy"))
	if got := e.Process(vars); !got.BoolValue() {
		t.Fatalf("=~ match failed: %v", got)
	}
}

func TestRegexLiteralSpecializationTernary(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{
		Text: "gsub",
		Children: []ast.Node{
			&ast.StringLiteral{Value: "banana"},
			&ast.RegexLiteral{Pattern: "a"},
			&ast.StringLiteral{Value: "b"},
		},
	}, false, 0)
	m.ResolveAll()

	if _, ok := e.inner.(*precompiledRegexTernaryNode); !ok {
		t.Fatalf("gsub with a regex literal did not specialize, got %T", e.inner)
	}
	got := e.Process(mlrval.NewVars())
	if got.StringValue() != "bbnbnb" {
		t.Fatalf("gsub result = %q, want %q", got.StringValue(), "bbnbnb")
	}
}

func TestUDFForwardReference(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	// The callsite is built, and thus enqueued, before the UDF is installed,
	// exercising the forward-reference case.
	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{Text: "double", Children: []ast.Node{num("21")}}, false, 0)

	m.InstallUDF(&udf.Defsite{
		Name:  "double",
		Arity: 1,
		Process: func(state interface{}, args []mlrval.Mlrval, vars *mlrval.Vars) mlrval.Mlrval {
			v, _ := args[0].Int64()
			return mlrval.FromInt(v * 2)
		},
	})
	m.ResolveAll()

	got := e.Process(mlrval.NewVars())
	if v, ok := got.Int64(); !ok || v != 42 {
		t.Fatalf("double(21) = %v, want 42", got)
	}
}

func TestNestedCallEnqueuesDuringDrain(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	// "+" (call, arity 2) wraps "abs" (nested call, arity 1): resolving the
	// outer node's first child recursively triggers AllocFromOperatorOrFunctionCall,
	// which enqueues the inner node onto the same queue mid-drain.
	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{
		Text: "+",
		Children: []ast.Node{
			&ast.Call{Text: "abs", Children: []ast.Node{num("-3")}},
			num("1"),
		},
	}, false, 0)
	m.ResolveAll()

	got := e.Process(mlrval.NewVars())
	if v, ok := got.Int64(); !ok || v != 4 {
		t.Fatalf("abs(-3)+1 = %v, want 4", got)
	}
}

func TestVariadicMinMax(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{
		Text:     "max",
		Children: []ast.Node{num("3"), num("9"), num("2")},
	}, false, 0)
	m.ResolveAll()

	got := e.Process(mlrval.NewVars())
	if v, ok := got.Int64(); !ok || v != 9 {
		t.Fatalf("max(3,9,2) = %v, want 9", got)
	}
}

func TestDebugDumpTreeIsNonEmpty(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{Text: "+", Children: []ast.Node{num("1"), num("2")}}, false, 0)
	m.ResolveAll()

	dump := m.DebugDumpTree(e)
	if dump == "" {
		t.Fatalf("DebugDumpTree returned empty string")
	}
}

func TestFieldReferenceReadsVars(t *testing.T) {
	m := Alloc(Config{ProgName: "mlr"})
	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{
		Text:     "toupper",
		Children: []ast.Node{field("name")},
	}, false, 0)
	m.ResolveAll()

	vars := mlrval.NewVars()
	vars.Set("name", mlrval.FromString("ozzy"))
	if got := e.Process(vars); got.StringValue() != "OZZY" {
		t.Fatalf("toupper($name) = %q, want OZZY", got.StringValue())
	}
}
