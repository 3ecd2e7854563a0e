package corelib

import (
	"testing"

	"github.com/redthing1/wren-port/value"
)

func TestObjectIdentityEquality(t *testing.T) {
	ctx := newFakeContext()
	table := ObjectPrimitives()
	eq := findFn(t, table, "Object", "==(_)")

	l1 := ctx.NewList().Value()
	l2 := ctx.NewList().Value()

	args := []value.Value{l1, l1}
	eq(ctx, args)
	if b, _ := args[0].AsBool(); !b {
		t.Error("a value must equal itself under Object's default ==")
	}

	args = []value.Value{l1, l2}
	eq(ctx, args)
	if b, _ := args[0].AsBool(); b {
		t.Error("two distinct lists must not be identity-equal")
	}
}

func TestObjectNegationAlwaysFalse(t *testing.T) {
	ctx := newFakeContext()
	table := ObjectPrimitives()
	bang := findFn(t, table, "Object", "!")

	args := []value.Value{value.NewNum(1)}
	bang(ctx, args)
	if b, _ := args[0].AsBool(); b {
		t.Error("Object.! must always be false")
	}
}

func TestObjectIsRejectsNonClassArgument(t *testing.T) {
	ctx := newFakeContext()
	table := ObjectPrimitives()
	is := findFn(t, table, "Object", "is(_)")

	args := []value.Value{value.NewNum(1), value.NewNum(2)}
	if is(ctx, args) {
		t.Fatal("is(_) with a non-class argument must error")
	}
}

func TestObjectToStringDefault(t *testing.T) {
	ctx := newFakeContext()
	table := ObjectPrimitives()
	toString := findFn(t, table, "Object", "toString")

	cls := value.NewClass("Widget")
	inst := value.NewInstance(cls)
	args := []value.Value{inst.Value()}
	toString(ctx, args)
	if args[0].AsString().Text != "instance of Widget" {
		t.Errorf("toString() = %q, want \"instance of Widget\"", args[0].AsString().Text)
	}
}

func TestClassNameSupertypeToString(t *testing.T) {
	ctx := newFakeContext()
	table := ObjectPrimitives()

	object := value.NewClass("Object")
	sub := value.NewClass("Sub")
	sub.BindSuperclass(object)

	name := findFn(t, table, "Class", "name")
	args := []value.Value{sub.Value()}
	name(ctx, args)
	if args[0].AsString().Text != "Sub" {
		t.Errorf("Class.name = %q, want Sub", args[0].AsString().Text)
	}

	supertype := findFn(t, table, "Class", "supertype")
	args = []value.Value{sub.Value()}
	supertype(ctx, args)
	if args[0].AsClass() != object {
		t.Error("Class.supertype must return the bound superclass")
	}

	args = []value.Value{object.Value()}
	supertype(ctx, args)
	if !args[0].IsNull() {
		t.Error("Object.supertype must be null (no superclass)")
	}
}

func TestObjectMetaclassSameIsIdentityIgnoringOverrides(t *testing.T) {
	ctx := newFakeContext()
	table := ObjectPrimitives()
	same := findFn(t, table, "Object", "same(_,_)")

	n := value.NewNum(1)
	args := []value.Value{value.Null, n, value.NewNum(1)}
	same(ctx, args)
	if b, _ := args[0].AsBool(); !b {
		t.Error("same(1, 1) must be true")
	}
}
