package value

import "testing"

func TestUpvalueOpenReadsThroughSlot(t *testing.T) {
	slot := NewNum(1)
	u := NewOpenUpvalue(&slot)

	if n, _ := u.Get().AsNum(); n != 1 {
		t.Fatalf("Get() = %v, want 1", n)
	}
	slot = NewNum(2)
	if n, _ := u.Get().AsNum(); n != 2 {
		t.Errorf("open upvalue did not observe the slot update, got %v", n)
	}
	if u.IsClosed() {
		t.Error("a fresh open upvalue must not report closed")
	}
}

func TestUpvalueSetWritesThroughSlotWhileOpen(t *testing.T) {
	slot := NewNum(1)
	u := NewOpenUpvalue(&slot)

	u.Set(NewNum(5))
	if n, _ := slot.AsNum(); n != 5 {
		t.Errorf("Set on an open upvalue must write through to the stack slot, got %v", n)
	}
}

func TestUpvalueCloseDetachesFromSlot(t *testing.T) {
	slot := NewNum(3)
	u := NewOpenUpvalue(&slot)

	u.Close()
	if !u.IsClosed() {
		t.Fatal("Close() must mark the upvalue closed")
	}
	if n, _ := u.Get().AsNum(); n != 3 {
		t.Errorf("Get() after Close = %v, want the captured value 3", n)
	}

	slot = NewNum(99)
	if n, _ := u.Get().AsNum(); n != 3 {
		t.Errorf("closed upvalue must be isolated from the original slot, got %v", n)
	}

	u.Set(NewNum(42))
	if n, _ := u.Get().AsNum(); n != 42 {
		t.Errorf("Set after Close must update the owned value, got %v", n)
	}
}

func TestUpvalueCloseIsIdempotent(t *testing.T) {
	slot := NewNum(1)
	u := NewOpenUpvalue(&slot)
	u.Close()
	u.Set(NewNum(7))
	u.Close()
	if n, _ := u.Get().AsNum(); n != 7 {
		t.Errorf("a second Close() must not reset the already-closed value, got %v", n)
	}
}

func TestClosureArityMatchesFunction(t *testing.T) {
	fn := NewFunction("block", 2)
	c := NewClosure(fn, nil, func(ctx PrimitiveContext, f *Fiber, args []Value) Value {
		return Null
	})
	if c.Arity() != 2 {
		t.Errorf("Arity() = %d, want 2", c.Arity())
	}
}

func TestClosureCapturesUpvalues(t *testing.T) {
	slot := NewNum(10)
	up := NewOpenUpvalue(&slot)
	fn := NewFunction("closure", 0)
	c := NewClosure(fn, []*ObjUpvalue{up}, nil)

	if len(c.Upvalues) != 1 {
		t.Fatalf("len(Upvalues) = %d, want 1", len(c.Upvalues))
	}
	if n, _ := c.Upvalues[0].Get().AsNum(); n != 10 {
		t.Errorf("captured upvalue value = %v, want 10", n)
	}
}
