package mlrval

import "github.com/jjdevbiz/miller/internal/lhmslv"

// Vars is the per-record variable context an evaluator tree's process()
// reads from. It is itself an ordered string map so that field order is
// preserved the same way record fields are, reusing the same map type the
// UDF registry and its peer containers are built on.
type Vars struct {
	fields *lhmslv.Map[Mlrval]
}

// NewVars builds an empty per-record context.
func NewVars() *Vars {
	return &Vars{fields: lhmslv.New[Mlrval]()}
}

// Get looks up a field by name, returning absent if it is not present.
func (v *Vars) Get(name string) Mlrval {
	val, ok := v.fields.Get(name)
	if !ok {
		return FromAbsent()
	}
	return val
}

// Set assigns a field value, preserving its original position if it was
// already present.
func (v *Vars) Set(name string, value Mlrval) {
	v.fields.Put(name, value)
}

// Has reports whether name is bound.
func (v *Vars) Has(name string) bool { return v.fields.Has(name) }
