package value

// PrimitiveContext is the minimal set of VM services a primitive or a
// native closure body needs, exposed as an interface so value (and
// corelib, which implements primitive bodies) never has to import the
// concrete VM type — the same import-cycle-avoidance shape as the
// teacher's registry.BuiltinCallContext (see DESIGN.md).
type PrimitiveContext interface {
	// CurrentFiber returns the fiber currently executing.
	CurrentFiber() *Fiber
	// SetCurrentFiber switches which fiber is current; used by
	// Fiber.call/transfer/yield primitives.
	SetCurrentFiber(*Fiber)
	// Roots exposes the always-present root classes (Object, Bool, Num,
	// Null) so primitives like Object.type and Num's arithmetic type
	// checks can find them without a module lookup.
	Roots() *RootClasses
	// LookupClass finds a declared class by name in the core module.
	// No corelib primitive calls it: Object.type and is(_) resolve
	// classes through Roots and the object header.
	LookupClass(name string) (*Class, bool)

	// NewString allocates and links a new String object.
	NewString(text string) Value
	// NewList allocates and links a new, empty List object.
	NewList() *ObjList
	// NewMap allocates and links a new, empty Map object.
	NewMap() *ObjMap
	// NewRange allocates and links a new Range object.
	NewRange(from, to float64, inclusive bool) *ObjRange
	// NewInstance allocates and links a new Instance of cls.
	NewInstance(cls *Class) *ObjInstance
	// NewForeign allocates and links a new Foreign object.
	NewForeign(cls *Class, data interface{}) *ObjForeign

	// WriteString calls the host's configured write callback
	// (spec.md §4.4 System.writeString_, §6).
	WriteString(s string)
	// Clock returns elapsed seconds, monotonic (spec.md §4.4 System.clock).
	Clock() float64
	// GC backs System.gc() (spec.md §4.4). The collector itself is
	// external (spec.md §1); corevm's implementation only clears mark
	// bits and frees nothing.
	GC()
	// Dollar evaluates the host-configured `$` operator handler
	// (spec.md §4.4); ok is false when no handler is configured, in
	// which case callers should use Null.
	Dollar(receiver Value) (result Value, ok bool)
}

// PrimitiveFn is the contract every primitive method satisfies
// (spec.md §4.1): args[0] is the receiver, args[1:] are the method
// arguments. Returning true means the result replaced args[0];
// returning false means either a fiber switch is pending or an error
// was recorded in the current fiber's error slot.
type PrimitiveFn func(ctx PrimitiveContext, args []Value) bool
