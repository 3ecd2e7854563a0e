package value

// ObjFunction is compiled code with an arity (spec.md §3). The bytecode
// compiler and interpreter loop are external collaborators (spec.md
// §1), so Function here carries only the metadata the core needs to
// validate calls and report arity mismatches; it never holds bytecode.
type ObjFunction struct {
	Obj
	Name  string
	Arity int
}

// NewFunction constructs a detached ObjFunction.
func NewFunction(name string, arity int) *ObjFunction {
	f := &ObjFunction{Name: name, Arity: arity}
	f.Obj.Kind = ObjFunctionKind
	f.Obj.Payload = f
	return f
}

// Value wraps f as a Value.
func (f *ObjFunction) Value() Value { return NewObj(&f.Obj) }

// Upvalue is either open (pointing at a slot on some fiber's stack) or
// closed (owning its captured Value), per spec.md §3.
type ObjUpvalue struct {
	Obj
	closed bool
	slot   *Value // open: points into a fiber's stack slice
	value  Value  // closed: owns the value directly
}

// NewOpenUpvalue constructs an upvalue pointing at a live stack slot.
func NewOpenUpvalue(slot *Value) *ObjUpvalue {
	u := &ObjUpvalue{slot: slot}
	u.Obj.Kind = ObjUpvalueKind
	u.Obj.Payload = u
	return u
}

// Value wraps u as a Value.
func (u *ObjUpvalue) Value() Value { return NewObj(&u.Obj) }

// Get reads through the upvalue, open or closed.
func (u *ObjUpvalue) Get() Value {
	if u.closed {
		return u.value
	}
	return *u.slot
}

// Set writes through the upvalue, open or closed.
func (u *ObjUpvalue) Set(v Value) {
	if u.closed {
		u.value = v
		return
	}
	*u.slot = v
}

// Close captures the current slot value and detaches from the stack; the
// owning frame has returned and the slot is no longer live.
func (u *ObjUpvalue) Close() {
	if u.closed {
		return
	}
	u.value = *u.slot
	u.closed = true
	u.slot = nil
}

// IsClosed reports whether Close has been called.
func (u *ObjUpvalue) IsClosed() bool { return u.closed }

// NativeBody is the executable body of a Closure whose bytecode would,
// in a complete implementation, be produced by the (out-of-scope)
// compiler. The core's own bootstrap and test harness construct
// closures directly in Go via NativeBody instead — see DESIGN.md's
// "script package" and "fiber" entries. It receives the primitive
// context (so it can allocate and call other primitives), the fiber it
// is running on (so it can call f.Yield/f.Suspend to switch away), and
// the call arguments (args[0] is always the receiver, matching
// spec.md §4.1's convention for primitives, so native closure bodies
// and primitives share a calling shape).
type NativeBody func(ctx PrimitiveContext, f *Fiber, args []Value) Value

// ObjClosure binds a Function with its captured upvalues (spec.md §3).
type ObjClosure struct {
	Obj
	Fn       *ObjFunction
	Upvalues []*ObjUpvalue
	Native   NativeBody
}

// NewClosure constructs a detached ObjClosure.
func NewClosure(fn *ObjFunction, upvalues []*ObjUpvalue, native NativeBody) *ObjClosure {
	c := &ObjClosure{Fn: fn, Upvalues: upvalues, Native: native}
	c.Obj.Kind = ObjClosureKind
	c.Obj.Payload = c
	return c
}

// Value wraps c as a Value.
func (c *ObjClosure) Value() Value { return NewObj(&c.Obj) }

// Arity reports the closure's function arity.
func (c *ObjClosure) Arity() int { return c.Fn.Arity }
