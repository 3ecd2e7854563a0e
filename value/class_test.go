package value

import "testing"

func TestBindSuperclassCopiesMethodTable(t *testing.T) {
	object := NewClass("Object")
	sigFoo := InternSignature("foo")
	object.BindPrimitive(sigFoo, func(ctx PrimitiveContext, args []Value) bool { return true })

	sub := NewClass("Sub")
	sub.BindSuperclass(object)

	if sub.Lookup(sigFoo).IsNone() {
		t.Fatal("subclass must inherit superclass methods at bind time")
	}

	sigBar := InternSignature("bar")
	sub.BindPrimitive(sigBar, func(ctx PrimitiveContext, args []Value) bool { return true })
	if !object.Lookup(sigBar).IsNone() {
		t.Error("binding a method on a subclass must not leak back to the superclass")
	}
}

func TestBindMethodOverride(t *testing.T) {
	object := NewClass("Object")
	sig := InternSignature("toString")
	object.BindPrimitive(sig, func(ctx PrimitiveContext, args []Value) bool {
		args[0] = NewNum(1)
		return true
	})

	sub := NewClass("Sub")
	sub.BindSuperclass(object)
	sub.BindPrimitive(sig, func(ctx PrimitiveContext, args []Value) bool {
		args[0] = NewNum(2)
		return true
	})

	args := []Value{Null}
	sub.Lookup(sig).Primitive(nil, args)
	if n, _ := args[0].AsNum(); n != 2 {
		t.Errorf("override did not take effect, got %v want 2", n)
	}

	args = []Value{Null}
	object.Lookup(sig).Primitive(nil, args)
	if n, _ := args[0].AsNum(); n != 1 {
		t.Errorf("overriding a subclass method must not mutate the superclass slot, got %v want 1", n)
	}
}

func TestLookupUnboundSignatureReturnsNoneNotPanic(t *testing.T) {
	c := NewClass("Empty")
	slot := c.Lookup(InternSignature("neverBound(_,_,_)"))
	if !slot.IsNone() {
		t.Error("Lookup of an unbound signature must report MethodNone")
	}
}

func TestClassIsWalksSuperclassChain(t *testing.T) {
	object := NewClass("Object")
	base := NewClass("Base")
	base.BindSuperclass(object)
	derived := NewClass("Derived")
	derived.BindSuperclass(base)

	if !derived.Is(object) || !derived.Is(base) || !derived.Is(derived) {
		t.Error("Is() must walk the full superclass chain including self")
	}
	unrelated := NewClass("Unrelated")
	if derived.Is(unrelated) {
		t.Error("Is() must not report true for an unrelated class")
	}
}

func TestClassDepthTerminatesAtObject(t *testing.T) {
	object := NewClass("Object")
	a := NewClass("A")
	a.BindSuperclass(object)
	b := NewClass("B")
	b.BindSuperclass(a)

	if object.Depth() != 0 {
		t.Errorf("Object.Depth() = %d, want 0", object.Depth())
	}
	if a.Depth() != 1 {
		t.Errorf("A.Depth() = %d, want 1", a.Depth())
	}
	if b.Depth() != 2 {
		t.Errorf("B.Depth() = %d, want 2", b.Depth())
	}
}

func TestInstanceFieldsSizedAndNulled(t *testing.T) {
	cls := NewClass("WithFields")
	cls.NumFields = 3
	inst := NewInstance(cls)
	if len(inst.Fields) != 3 {
		t.Fatalf("len(Fields) = %d, want 3", len(inst.Fields))
	}
	for i, f := range inst.Fields {
		if !f.IsNull() {
			t.Errorf("field %d = %+v, want Null", i, f)
		}
	}
}
