// cmd/mlr/main.go
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jjdevbiz/miller/internal/ast"
	"github.com/jjdevbiz/miller/internal/kernel"
	"github.com/jjdevbiz/miller/internal/mapping"
	"github.com/jjdevbiz/miller/internal/mlrval"
)

const progName = "mlr"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches on the first argument and returns an exit code instead
// of calling os.Exit itself so it can be driven from testscript.RunMain
// in script_test.go.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	switch args[0] {
	case "--help", "-h", "help":
		showUsage()
		return 0
	case "--version", "-v", "version":
		fmt.Println("mlr (function-manager core) 1.0.0")
		return 0
	case "-f", "--list-functions":
		m := mapping.Alloc(mapping.Config{ProgName: progName})
		m.ListFunctions(os.Stdout, "")
		return 0
	case "-F", "--list-all-raw":
		m := mapping.Alloc(mapping.Config{ProgName: progName})
		m.ListAllRaw(os.Stdout)
		return 0
	case "--usage-function", "-u":
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		m := mapping.Alloc(mapping.Config{ProgName: progName})
		m.FunctionUsage(os.Stdout, name)
		return 0
	case "--seed":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "%s: --seed requires an argument.\n", progName)
			return 1
		}
		return seedAndEval(args[1], args[2:])
	case "eval":
		return evalExpression(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "%s: unrecognized command %q.\n", progName, args[0])
		showUsage()
		return 1
	}
}

// seedAndEval reseeds the shared random source before running whatever
// expression follows, so urand/urand32/urandint reports are reproducible
// across runs, as the usage text promises.
func seedAndEval(seedArg string, rest []string) int {
	var seed int64
	if _, err := fmt.Sscanf(seedArg, "%d", &seed); err != nil {
		fmt.Fprintf(os.Stderr, "%s: --seed argument must be an integer.\n", progName)
		return 1
	}
	kernel.Seed(seed)
	return evalExpression(rest)
}

// evalExpression is a minimal demonstration driver: it is not a DSL
// parser, but it exercises the manager end to end — alloc, resolve_all,
// process — on a tiny fixed built-in AST so `mlr eval` has something
// concrete to run against.
func evalExpression(fieldArgs []string) int {
	m := mapping.Alloc(mapping.Config{ProgName: progName})
	vars := mlrval.NewVars()
	for _, kv := range fieldArgs {
		name, value := splitKV(kv)
		vars.Set(name, mlrval.FromInferredString(value))
	}

	e := m.AllocFromOperatorOrFunctionCall(&ast.Call{
		Text:     "+",
		Children: []ast.Node{&ast.FieldRef{Name: "x"}, &ast.NumericLiteral{Text: "1"}},
	}, true, 0)
	m.ResolveAll()

	result := e.Process(vars)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("x + 1 = %s\n", result.StringValue())
	} else {
		fmt.Println(result.StringValue())
	}
	m.Close()
	return 0
}

func splitKV(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func showUsage() {
	fmt.Println(`Usage: mlr [command] [options]
Commands:
  -f, --list-functions      list built-in function names
  -F, --list-all-raw        list built-in function names, one per line
  -u, --usage-function NAME show usage for NAME, or all functions if omitted
  --seed N                  seed urand/urand32/urandint, then run eval
  eval x=VALUE ...           evaluate a fixed demo expression against field x
  --version                  show version
  --help                     show this message`)
}
