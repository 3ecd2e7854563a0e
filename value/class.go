package value

// MethodKind tags what a Class method table slot dispatches to, per
// spec.md §3: "each slot tagged as none, primitive, foreign, block,
// script closure, or constructor."
type MethodKind byte

const (
	MethodNone MethodKind = iota
	MethodPrimitive
	MethodForeign
	MethodBlock
	MethodScriptClosure
	MethodConstructor
)

// MethodSlot is one entry in a Class's method table.
type MethodSlot struct {
	Kind      MethodKind
	Primitive PrimitiveFn
	Closure   *ObjClosure
}

func (s MethodSlot) IsNone() bool { return s.Kind == MethodNone }

// Class holds a name, an optional superclass, a dense method table
// indexed by interned Signature, an instance field count, and an
// optional attributes Map (spec.md §3). Its own Class field (inherited
// from Obj) is the metaclass.
type Class struct {
	Obj
	Name        string
	Superclass  *Class
	methods     []MethodSlot
	NumFields   int
	Attributes  *ObjMap
	IsForeign   bool
}

// NewClass constructs a detached Class with no superclass and an empty
// method table. Bootstrap wires superclass/metaclass relationships
// separately (spec.md §4.5).
func NewClass(name string) *Class {
	c := &Class{Name: name}
	c.Obj.Kind = ObjClassKind
	c.Obj.Payload = c
	return c
}

// Value wraps c as a Value.
func (c *Class) Value() Value { return NewObj(&c.Obj) }

// BindSuperclass sets c's superclass and copies its method table so
// lookup stays O(1) by signature index (spec.md §4.2). Call before
// binding any of c's own methods — later BindMethod calls overwrite
// slots in place, which is how overrides work.
func (c *Class) BindSuperclass(super *Class) {
	c.Superclass = super
	c.methods = append([]MethodSlot(nil), super.methods...)
	c.NumFields += super.NumFields
}

// BindMethod installs slot at sig, growing the table if sig is beyond
// its current length (the table is a dense vector, but it only needs to
// be as long as the highest signature any bound method uses).
func (c *Class) BindMethod(sig Signature, slot MethodSlot) {
	if int(sig) >= len(c.methods) {
		grown := make([]MethodSlot, int(sig)+1)
		copy(grown, c.methods)
		c.methods = grown
	}
	c.methods[sig] = slot
}

// BindPrimitive is a convenience wrapper around BindMethod for the
// common case of a native Go primitive.
func (c *Class) BindPrimitive(sig Signature, fn PrimitiveFn) {
	c.BindMethod(sig, MethodSlot{Kind: MethodPrimitive, Primitive: fn})
}

// Lookup returns the method slot for sig, or the zero slot (Kind ==
// MethodNone) if the class's table doesn't reach that far or the slot
// was never bound — the interpreter must treat both the same way
// (spec.md §3's "the interpreter must never read an uninitialized
// slot" invariant is satisfied by this single check covering both
// cases).
func (c *Class) Lookup(sig Signature) MethodSlot {
	if int(sig) >= len(c.methods) {
		return MethodSlot{}
	}
	return c.methods[sig]
}

// Is walks the superclass chain looking for target, implementing
// Object.is(C) (spec.md §4.4).
func (c *Class) Is(target *Class) bool {
	for cur := c; cur != nil; cur = cur.Superclass {
		if cur == target {
			return true
		}
	}
	return false
}

// Depth returns the number of superclass hops to Object (0 for Object
// itself), used by the "walking superclass terminates at Object with
// depth finite" testable property (spec.md §8).
func (c *Class) Depth() int {
	d := 0
	for cur := c.Superclass; cur != nil; cur = cur.Superclass {
		d++
	}
	return d
}

// ObjInstance is a fixed-length array of fields sized by the class's
// field count at construction (spec.md §3).
type ObjInstance struct {
	Obj
	Fields []Value
}

// NewInstance constructs a detached ObjInstance for cls.
func NewInstance(cls *Class) *ObjInstance {
	inst := &ObjInstance{Fields: make([]Value, cls.NumFields)}
	inst.Obj.Kind = ObjInstanceKind
	inst.Obj.Class = cls
	inst.Obj.Payload = inst
	for i := range inst.Fields {
		inst.Fields[i] = Null
	}
	return inst
}

// Value wraps i as a Value.
func (i *ObjInstance) Value() Value { return NewObj(&i.Obj) }

// ObjForeign wraps host-owned data behind the common object header
// (spec.md §3). The core never interprets Data; foreign methods
// (spec.md §4.2's FOREIGN kind) are entirely host-provided.
type ObjForeign struct {
	Obj
	Data interface{}
}

// NewForeign constructs a detached ObjForeign.
func NewForeign(cls *Class, data interface{}) *ObjForeign {
	f := &ObjForeign{Data: data}
	f.Obj.Kind = ObjForeignKind
	f.Obj.Class = cls
	f.Obj.Payload = f
	return f
}

// Value wraps f as a Value.
func (f *ObjForeign) Value() Value { return NewObj(&f.Obj) }
