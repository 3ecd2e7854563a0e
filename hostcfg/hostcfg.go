// Package hostcfg is the VM construction-time configuration spec.md §6
// names: write/error callbacks, the optional module-loading and
// foreign-binding hooks, the `$` operator handler, and the collector's
// heap-tuning knobs. In a zero Config every field is a Go zero value
// (nil func, 0 int); Default instead sets no-op write/error callbacks and
// nonzero heap-tuning values, and leaves every other hook nil (spec.md
// §6's "all optional" note).
package hostcfg

import "github.com/redthing1/wren-port/value"

// ErrorKind mirrors scripterr.Kind at the host-callback boundary
// without importing scripterr, since hostcfg sits below it in the
// dependency graph (corevm wires the two together).
type ErrorKind int

const (
	CompileError ErrorKind = iota
	RuntimeError
	StackTraceError
)

// Config bundles every host callback and tuning knob a VM is
// constructed with (spec.md §6).
type Config struct {
	// Write receives a byte sequence to emit; no return (spec.md §6).
	Write func(text string)
	// Error is invoked with kind ∈ {Compile, Runtime, StackTrace}; for
	// StackTrace, line and module identify a frame and message names the
	// function.
	Error func(kind ErrorKind, module string, line int, message string)

	// ResolveModule rewrites an import name relative to importer, or
	// returns it unchanged if nil.
	ResolveModule func(importer, name string) string
	// LoadModule returns the source for a resolved module name, or
	// ("", false) if it cannot be found.
	LoadModule func(name string) (string, bool)
	// BindForeignMethod resolves a FOREIGN primitive (spec.md §4.2) by
	// (module, className, isStatic, signature).
	BindForeignMethod func(module, className string, isStatic bool, signature string) value.PrimitiveFn
	// BindForeignClass supplies allocate/finalize hooks for a foreign
	// class declared in module.
	BindForeignClass func(module, className string) (allocate func() interface{}, finalize func(interface{}))
	// DollarOperatorFn implements the `$` operator (spec.md §4.4's
	// String.$ delegates here); ok is false when unset.
	DollarOperatorFn func(receiver value.Value) (result value.Value, ok bool)

	// InitialHeapSize, MinHeapSize, HeapGrowthPercent tune the
	// (external) collector; the core only stores and forwards them.
	InitialHeapSize   int
	MinHeapSize       int
	HeapGrowthPercent int
}

// Default returns a Config with the conventional collector defaults
// (matching the source runtime's well-known tuning constants) and
// write/error callbacks that discard output — a host embedding the VM
// is expected to override both.
func Default() Config {
	return Config{
		Write:             func(string) {},
		Error:             func(ErrorKind, string, int, string) {},
		InitialHeapSize:   1024 * 1024 * 10,
		MinHeapSize:       1024 * 1024,
		HeapGrowthPercent: 50,
	}
}
