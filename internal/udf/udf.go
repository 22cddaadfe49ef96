// Package udf implements the UDF registry: a name→definition-site record
// for each user-defined function, built on the ordered string map so
// defsites can be torn down in installation order.
package udf

import (
	"fmt"
	"os"

	"github.com/jjdevbiz/miller/internal/lhmslv"
	"github.com/jjdevbiz/miller/internal/mlrval"
)

// Process is a UDF body: given the call's argument values (len == Arity)
// and the per-record variable context, produce a result.
type Process func(state interface{}, args []mlrval.Mlrval, vars *mlrval.Vars) mlrval.Mlrval

// Drop releases any state a UDF definition site owns.
type Drop func(state interface{})

// Defsite is one user-defined function's definition-site record.
type Defsite struct {
	Name    string
	Arity   int
	State   interface{}
	Process Process
	Drop    Drop
}

// Registry is the name→Defsite map. The zero value is not usable;
// construct with New.
type Registry struct {
	progName string
	defsites *lhmslv.Map[*Defsite]
}

func New(progName string) *Registry {
	return &Registry{progName: progName, defsites: lhmslv.New[*Defsite]()}
}

// Install adds a defsite, checking for a built-in-name collision before
// checking for a duplicate-UDF collision, so when a name collides with
// both, the built-in-collision diagnostic is the one that fires.
func (r *Registry) Install(defsite *Defsite, isBuiltinName func(string) bool) {
	if isBuiltinName(defsite.Name) {
		fmt.Fprintf(os.Stderr, "%s: function named \"%s\" must not override a built-in function of the same name.\n",
			r.progName, defsite.Name)
		os.Exit(1)
	}
	if r.defsites.Has(defsite.Name) {
		fmt.Fprintf(os.Stderr, "%s: function named \"%s\" has already been defined.\n",
			r.progName, defsite.Name)
		os.Exit(1)
	}
	r.defsites.Put(defsite.Name, defsite)
}

// Lookup returns the defsite for name, if any.
func (r *Registry) Lookup(name string) (*Defsite, bool) {
	return r.defsites.Get(name)
}

// Close drops every defsite's owned state, in installation order, then
// releases the registry's own storage.
func (r *Registry) Close() {
	r.defsites.Iterate(func(_ string, d *Defsite) bool {
		if d.Drop != nil {
			d.Drop(d.State)
		}
		return true
	})
	r.defsites = lhmslv.New[*Defsite]()
}
