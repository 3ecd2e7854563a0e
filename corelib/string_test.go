package corelib

import (
	"testing"

	"github.com/redthing1/wren-port/value"
)

func TestStringConcatenation(t *testing.T) {
	ctx := newFakeContext()
	table := StringPrimitives()
	plus := findFn(t, table, "String", "+(_)")

	args := []value.Value{ctx.NewString("foo"), ctx.NewString("bar")}
	if !plus(ctx, args) {
		t.Fatal("\"foo\" + \"bar\" errored")
	}
	if args[0].AsString().Text != "foobar" {
		t.Errorf("\"foo\" + \"bar\" = %q, want foobar", args[0].AsString().Text)
	}
}

func TestStringFromCodePointBoundaries(t *testing.T) {
	ctx := newFakeContext()
	table := StringPrimitives()
	fromCP := findFn(t, table, "String", "fromCodePoint(_)")

	args := []value.Value{value.Null, value.NewNum(-1)}
	if fromCP(ctx, args) {
		t.Fatal("fromCodePoint(-1) must error")
	}
	msg := ctx.CurrentFiber().Error.AsString()
	if msg == nil || msg.Text != "Code point cannot be negative." {
		t.Errorf("error = %+v", ctx.CurrentFiber().Error)
	}

	args = []value.Value{value.Null, value.NewNum(0x110000)}
	if fromCP(ctx, args) {
		t.Fatal("fromCodePoint(0x110000) must error")
	}
}

func TestStringFromByteBoundaries(t *testing.T) {
	ctx := newFakeContext()
	table := StringPrimitives()
	fromByte := findFn(t, table, "String", "fromByte(_)")

	args := []value.Value{value.Null, value.NewNum(256)}
	if fromByte(ctx, args) {
		t.Fatal("fromByte(256) must error")
	}
	args = []value.Value{value.Null, value.NewNum(-1)}
	if fromByte(ctx, args) {
		t.Fatal("fromByte(-1) must error")
	}
	args = []value.Value{value.Null, value.NewNum(65)}
	if !fromByte(ctx, args) {
		t.Fatal("fromByte(65) must succeed")
	}
	if args[0].AsString().Text != "A" {
		t.Errorf("fromByte(65) = %q, want A", args[0].AsString().Text)
	}
}

func TestStringContainsIndexOfEndsWith(t *testing.T) {
	ctx := newFakeContext()
	table := StringPrimitives()

	contains := findFn(t, table, "String", "contains(_)")
	args := []value.Value{ctx.NewString("hello world"), ctx.NewString("wor")}
	contains(ctx, args)
	if b, _ := args[0].AsBool(); !b {
		t.Error("\"hello world\".contains(\"wor\") must be true")
	}

	endsWith := findFn(t, table, "String", "endsWith(_)")
	args = []value.Value{ctx.NewString("hello world"), ctx.NewString("world")}
	endsWith(ctx, args)
	if b, _ := args[0].AsBool(); !b {
		t.Error("\"hello world\".endsWith(\"world\") must be true")
	}

	indexOf := findFn(t, table, "String", "indexOf(_,_)")
	args = []value.Value{ctx.NewString("abcabc"), ctx.NewString("abc"), value.NewNum(1)}
	indexOf(ctx, args)
	if n, _ := args[0].AsNum(); n != 3 {
		t.Errorf("\"abcabc\".indexOf(\"abc\", 1) = %v, want 3", n)
	}
}

func TestStringDollarDelegatesToHost(t *testing.T) {
	ctx := newFakeContext()
	ctx.dollar = func(v value.Value) (value.Value, bool) {
		return ctx.NewString("handled"), true
	}
	table := StringPrimitives()
	dollar := findFn(t, table, "String", "$(_)")

	args := []value.Value{ctx.NewString("x"), value.Null}
	dollar(ctx, args)
	if args[0].AsString().Text != "handled" {
		t.Errorf("$ with host handler set = %+v, want \"handled\"", args[0])
	}
}

func TestStringDollarReturnsNullWhenUnset(t *testing.T) {
	ctx := newFakeContext()
	table := StringPrimitives()
	dollar := findFn(t, table, "String", "$(_)")

	args := []value.Value{ctx.NewString("x"), value.Null}
	dollar(ctx, args)
	if !args[0].IsNull() {
		t.Errorf("$ with no host handler set = %+v, want null", args[0])
	}
}

func TestStringRangeSubscriptWithStep(t *testing.T) {
	ctx := newFakeContext()
	table := StringPrimitives()
	subscript := findFn(t, table, "String", "[_]")

	s := ctx.NewString("abcdef")
	r := ctx.NewRange(4, 0, true)
	args := []value.Value{s, r.Value()}
	subscript(ctx, args)
	if args[0].AsString().Text != "edcba" {
		t.Errorf("\"abcdef\"[4..0] = %q, want edcba", args[0].AsString().Text)
	}
}
