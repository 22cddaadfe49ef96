package mapping

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"

	"github.com/jjdevbiz/miller/internal/ast"
	"github.com/jjdevbiz/miller/internal/catalog"
	"github.com/jjdevbiz/miller/internal/udf"
)

// Config carries the manager's construction-time settings: the program
// name fatal diagnostics are prefixed with, passed explicitly rather than
// read from a global.
type Config struct {
	ProgName string
}

// Manager owns the UDF registry, the built-in name set, and the
// unresolved-callsite queue, and exposes the alloc/resolve/install/
// reporting surface callers use to build and run evaluator trees.
type Manager struct {
	progName      string
	udfs          *udf.Registry
	builtinNames  map[string]bool
	queue         callsiteQueue
	resolveCalled bool
}

// Alloc constructs a Manager, precomputing the built-in name set once so
// UDF-collision checks don't rescan the catalog on every install.
func Alloc(cfg Config) *Manager {
	names := catalog.Names()
	builtin := make(map[string]bool, len(names))
	for _, n := range names {
		builtin[n] = true
	}
	return &Manager{
		progName:     cfg.ProgName,
		udfs:         udf.New(cfg.ProgName),
		builtinNames: builtin,
	}
}

// InstallUDF registers a UDF definition site, fatal on any collision with a
// built-in name or a previously installed UDF.
func (m *Manager) InstallUDF(defsite *udf.Defsite) {
	m.udfs.Install(defsite, func(name string) bool { return m.builtinNames[name] })
}

// AllocFromOperatorOrFunctionCall builds an unresolved placeholder for a
// call-shaped AST node and enqueues it for ResolveAll. typeInferencing and
// contextFlags are opaque to the core; they are carried through to
// resolution only because the placeholder node retains them for whatever
// the caller's type-inference pass needs.
func (m *Manager) AllocFromOperatorOrFunctionCall(call *ast.Call, typeInferencing bool, contextFlags int) *Evaluator {
	e := &Evaluator{inner: &unresolvedNode{
		functionName:    call.Text,
		userArity:       len(call.Children),
		typeInferencing: typeInferencing,
		contextFlags:    contextFlags,
		astChildren:     call.Children,
	}}
	m.queue.append(e)
	return e
}

// ResolveAll drains the unresolved-callsite queue, rewriting each
// placeholder in place. It must be called after all parsing and all
// InstallUDF calls, and is idempotent on an empty queue. Draining
// re-checks the queue head on every iteration, since resolving a UDF
// callsite recursively builds child evaluators that may themselves
// enqueue further placeholders.
func (m *Manager) ResolveAll() {
	m.resolveCalled = true
	m.queue.drain(m.resolve)
}

// ListFunctions writes an 80-column wrapped, leader-prefixed list of every
// built-in name.
func (m *Manager) ListFunctions(w io.Writer, leader string) {
	catalog.List(w, leader, catalog.Names())
}

// FunctionUsage writes the usage report for one name, or every name when
// name == "".
func (m *Manager) FunctionUsage(w io.Writer, name string) {
	catalog.Usage(w, name)
}

// ListAllRaw writes one built-in name per line.
func (m *Manager) ListAllRaw(w io.Writer) {
	for _, n := range catalog.Names() {
		fmt.Fprintln(w, n)
	}
}

// Close releases the UDF registry's owned state.
func (m *Manager) Close() { m.udfs.Close() }

// DebugDumpTree renders a resolved evaluator's node tree, unexported fields
// included, for use in test failure messages.
func (m *Manager) DebugDumpTree(e *Evaluator) string {
	return pretty.Sprint(e.inner)
}

func (m *Manager) fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", m.progName, fmt.Sprintf(format, args...))
	os.Exit(1)
}
