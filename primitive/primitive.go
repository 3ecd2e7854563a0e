// Package primitive implements the native-method registration mechanism
// described in spec.md §4.2: a compile-time-introspected table of
// (className, signature, kind, onMetaclass) entries, each naming a
// native function with the contract of spec.md §4.1. The teacher's
// registry package plays the analogous role for PHP builtins — a flat
// table of named functions later bound into the live symbol graph by
// name (see registry.Registry.RegisterFunction in the teacher repo) —
// so this package mirrors that table-then-bind shape instead of the
// source runtime's macro-based introspection (spec.md §9 explicitly
// calls for "an explicit static registration table" as the port's
// replacement).
package primitive

import "github.com/redthing1/wren-port/value"

// Kind tags what calling convention an Entry's native function uses
// (spec.md §4.2).
type Kind byte

const (
	// Primitive executes inline; its result replaces the receiver slot.
	Primitive Kind = iota
	// FunctionCall is Fn.call's family: the interpreter transfers
	// control into the closure without leaving frame state inconsistent.
	FunctionCall
	// Foreign is host-provided; the core only records the binding.
	Foreign
)

// Entry is one row of the registration table.
type Entry struct {
	ClassName   string
	Signature   string
	Kind        Kind
	OnMetaclass bool
	Fn          value.PrimitiveFn
}

// Table is an ordered collection of Entry, typically built once per
// core primitive source file (bool.go, num.go, ...) by a function named
// Primitives(), mirroring the teacher's GetXFunctions() convention.
type Table []Entry

// Bind registers a function under (className, signature, onMetaclass).
// It is the table-building primitive every corelib file calls once per
// method it defines.
func (t *Table) Bind(className, signature string, kind Kind, onMetaclass bool, fn value.PrimitiveFn) {
	*t = append(*t, Entry{
		ClassName:   className,
		Signature:   signature,
		Kind:        kind,
		OnMetaclass: onMetaclass,
		Fn:          fn,
	})
}

// Merge concatenates other tables into a new one, used by corevm's
// Bootstrap to assemble the full ~140-entry registration set from each
// corelib file's Primitives() output.
func Merge(tables ...Table) Table {
	total := 0
	for _, t := range tables {
		total += len(t)
	}
	out := make(Table, 0, total)
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// Apply walks entries filtered by className and binds each into either
// cls's method table or its metaclass's, per spec.md §4.2 ("Registration
// walks entries filtered by className and binds each into either the
// class's method table or its metaclass's method table when onMetaclass
// is set"). An onMetaclass entry is skipped (not bound) when cls's
// metaclass does not exist yet — corevm.Bootstrap calls Apply for
// "Object" twice for exactly this reason: once before Object's
// metaclass is wired (step 2) and once after (step 4), so the second
// call picks up what the first had to defer.
func (t Table) Apply(className string, cls *value.Class) {
	metaclass := cls.Header().Class
	for _, e := range t {
		if e.ClassName != className {
			continue
		}
		target := cls
		if e.OnMetaclass {
			if metaclass == nil {
				continue
			}
			target = metaclass
		}
		sig := value.InternSignature(e.Signature)
		target.BindPrimitive(sig, e.Fn)
	}
}
