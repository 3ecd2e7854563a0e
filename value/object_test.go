package value

import "testing"

func TestObjectListPushAndSweep(t *testing.T) {
	var list ObjectList
	a := NewString("a").Header()
	b := NewString("b").Header()
	c := NewString("c").Header()
	list.Push(a)
	list.Push(b)
	list.Push(c)

	if list.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", list.Count())
	}

	list.Unmark()
	b.Mark()
	c.Mark()
	freed := list.Sweep()
	if freed != 1 {
		t.Fatalf("Sweep() freed %d, want 1", freed)
	}

	var remaining []*Obj
	list.Each(func(o *Obj) { remaining = append(remaining, o) })
	if len(remaining) != 2 {
		t.Fatalf("objects remaining after sweep = %d, want 2", len(remaining))
	}
	for _, o := range remaining {
		if o == a {
			t.Error("unmarked object 'a' survived sweep")
		}
	}
}

func TestObjHeaderMarkedRoundTrip(t *testing.T) {
	o := NewList().Header()
	if o.Marked() {
		t.Fatal("a fresh object must start unmarked")
	}
	o.Mark()
	if !o.Marked() {
		t.Error("Mark() must set the mark bit")
	}
}

func TestObjKindString(t *testing.T) {
	if ObjString.String() != "String" {
		t.Errorf("ObjString.String() = %q, want String", ObjString.String())
	}
	if ObjFiberKind.String() != "Fiber" {
		t.Errorf("ObjFiberKind.String() = %q, want Fiber", ObjFiberKind.String())
	}
}
