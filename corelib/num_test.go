package corelib

import (
	"math"
	"testing"

	"github.com/redthing1/wren-port/value"
)

func TestNumArithmeticOps(t *testing.T) {
	ctx := newFakeContext()
	table := NumPrimitives()

	add := findFn(t, table, "Num", "+(_)")
	args := []value.Value{value.NewNum(2), value.NewNum(3)}
	if !add(ctx, args) {
		t.Fatal("2 + 3 errored")
	}
	if n, _ := args[0].AsNum(); n != 5 {
		t.Errorf("2 + 3 = %v, want 5", n)
	}

	div := findFn(t, table, "Num", "/(_)")
	args = []value.Value{value.NewNum(7), value.NewNum(2)}
	div(ctx, args)
	if n, _ := args[0].AsNum(); n != 3.5 {
		t.Errorf("7 / 2 = %v, want 3.5", n)
	}
}

func TestNumArithmeticRejectsNonNumArgument(t *testing.T) {
	ctx := newFakeContext()
	table := NumPrimitives()
	add := findFn(t, table, "Num", "+(_)")

	args := []value.Value{value.NewNum(2), value.NewBool(true)}
	if add(ctx, args) {
		t.Fatal("adding a non-Num right operand must fail")
	}
	if ctx.CurrentFiber().Error.IsNull() {
		t.Error("a failed primitive must record an error in the current fiber")
	}
}

func TestNumBitwiseReinterpretsAsUint32(t *testing.T) {
	ctx := newFakeContext()
	table := NumPrimitives()

	not := findFn(t, table, "Num", "~")
	args := []value.Value{value.NewNum(0)}
	not(ctx, args)
	n, _ := args[0].AsNum()
	if n != float64(^uint32(0)) {
		t.Errorf("~0 = %v, want %v", n, float64(^uint32(0)))
	}
}

func TestNumRangeConstructors(t *testing.T) {
	ctx := newFakeContext()
	table := NumPrimitives()

	inclusive := findFn(t, table, "Num", "..(_)")
	args := []value.Value{value.NewNum(1), value.NewNum(5)}
	inclusive(ctx, args)
	r := args[0].AsRange()
	if r == nil || !r.IsInclusive {
		t.Fatal("1..5 must construct an inclusive Range")
	}

	exclusive := findFn(t, table, "Num", "...(_)")
	args = []value.Value{value.NewNum(1), value.NewNum(5)}
	exclusive(ctx, args)
	r = args[0].AsRange()
	if r == nil || r.IsInclusive {
		t.Fatal("1...5 must construct an exclusive Range")
	}
}

func TestNumFractionPreservesSign(t *testing.T) {
	ctx := newFakeContext()
	table := NumPrimitives()
	fraction := findFn(t, table, "Num", "fraction")

	args := []value.Value{value.NewNum(-2.25)}
	fraction(ctx, args)
	n, _ := args[0].AsNum()
	if n != -0.25 {
		t.Errorf("(-2.25).fraction = %v, want -0.25", n)
	}
}

func TestNumClamp(t *testing.T) {
	ctx := newFakeContext()
	table := NumPrimitives()
	clamp := findFn(t, table, "Num", "clamp(_,_)")

	args := []value.Value{value.NewNum(10), value.NewNum(0), value.NewNum(5)}
	clamp(ctx, args)
	if n, _ := args[0].AsNum(); n != 5 {
		t.Errorf("10.clamp(0,5) = %v, want 5", n)
	}

	args = []value.Value{value.NewNum(-10), value.NewNum(0), value.NewNum(5)}
	clamp(ctx, args)
	if n, _ := args[0].AsNum(); n != 0 {
		t.Errorf("-10.clamp(0,5) = %v, want 0", n)
	}
}

func TestNumIsNanIsInfinity(t *testing.T) {
	ctx := newFakeContext()
	table := NumPrimitives()

	isNan := findFn(t, table, "Num", "isNan")
	args := []value.Value{value.NewNum(math.NaN())}
	isNan(ctx, args)
	if b, _ := args[0].AsBool(); !b {
		t.Error("NaN.isNan must be true")
	}

	isInf := findFn(t, table, "Num", "isInfinity")
	args = []value.Value{value.NewNum(math.Inf(1))}
	isInf(ctx, args)
	if b, _ := args[0].AsBool(); !b {
		t.Error("infinity.isInfinity must be true")
	}
}

func TestNumFromStringRoundTrip(t *testing.T) {
	ctx := newFakeContext()
	table := NumPrimitives()
	toString := findFn(t, table, "Num", "toString")
	fromString := findFn(t, table, "Num", "fromString(_)")

	n := value.NewNum(3.5)
	args := []value.Value{n}
	toString(ctx, args)
	s := args[0]

	args = []value.Value{value.Null, s}
	fromString(ctx, args)
	got, ok := args[0].AsNum()
	if !ok || got != 3.5 {
		t.Errorf("fromString(toString(3.5)) = %v, want 3.5", args[0])
	}
}
