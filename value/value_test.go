package value

import "testing"

func TestValuePredicatesAndAccessors(t *testing.T) {
	n := NewNum(3.5)
	if !n.IsNum() || n.IsBool() || n.IsObj() {
		t.Fatalf("NewNum produced wrong type tags: %+v", n)
	}
	got, ok := n.AsNum()
	if !ok || got != 3.5 {
		t.Fatalf("AsNum() = %v, %v; want 3.5, true", got, ok)
	}

	if _, ok := n.AsBool(); ok {
		t.Fatal("AsNum value reported ok for AsBool")
	}

	if !True.IsBool() || !False.IsBool() {
		t.Fatal("True/False must be tagged TypeBool")
	}
	b, ok := True.AsBool()
	if !ok || !b {
		t.Fatalf("True.AsBool() = %v, %v", b, ok)
	}

	if !Null.IsNull() || Null.IsUndefined() {
		t.Fatal("Null singleton mistagged")
	}
	if !Undefined.IsUndefined() {
		t.Fatal("Undefined singleton mistagged")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Null, false},
		{Undefined, false},
		{False, false},
		{True, true},
		{NewNum(0), true},
		{NewNum(-1), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("Truthy(%+v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqualNumbersAndBools(t *testing.T) {
	if !Equal(NewNum(1), NewNum(1)) {
		t.Error("equal numbers should compare equal")
	}
	if Equal(NewNum(1), NewNum(2)) {
		t.Error("distinct numbers should not compare equal")
	}
	if Equal(NewNum(1), True) {
		t.Error("values of different types must never compare equal")
	}
	if !Equal(True, True) || Equal(True, False) {
		t.Error("bool equality is wrong")
	}
}

func TestEqualStringsByteIdentical(t *testing.T) {
	a := NewString("hello").Value()
	b := NewString("hello").Value()
	if a.Obj() == b.Obj() {
		t.Fatal("test setup: expected two distinct string objects")
	}
	if !Equal(a, b) {
		t.Error("distinct but byte-identical strings must compare equal (spec.md §3)")
	}
	c := NewString("world").Value()
	if Equal(a, c) {
		t.Error("strings with different bytes must not compare equal")
	}
}

func TestEqualOtherObjectsByIdentity(t *testing.T) {
	l1 := NewList().Value()
	l2 := NewList().Value()
	if Equal(l1, l2) {
		t.Error("two distinct empty lists must not compare equal (identity only)")
	}
	if !Equal(l1, l1) {
		t.Error("a list must equal itself")
	}
}

func TestClassOf(t *testing.T) {
	objCls := NewClass("Object")
	boolCls := NewClass("Bool")
	numCls := NewClass("Num")
	nullCls := NewClass("Null")
	roots := &RootClasses{Object: objCls, Bool: boolCls, Num: numCls, Null: nullCls}

	if Null.ClassOf(roots) != nullCls {
		t.Error("Null.ClassOf should return the Null root class")
	}
	if True.ClassOf(roots) != boolCls {
		t.Error("True.ClassOf should return the Bool root class")
	}
	if NewNum(1).ClassOf(roots) != numCls {
		t.Error("Num value ClassOf should return the Num root class")
	}

	strCls := NewClass("String")
	s := NewString("x")
	s.Obj.Class = strCls
	if s.Value().ClassOf(roots) != strCls {
		t.Error("heap object ClassOf should read the object header's Class")
	}
}
