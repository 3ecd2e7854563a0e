package corelib

import (
	"math"
	"strconv"

	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// NumPrimitives returns the Num class's primitives: arithmetic,
// comparison, bitwise (reinterpreting both sides as unsigned 32-bit),
// range construction, and the class-side numeric constants (spec.md
// §4.4 and §6's constant table).
func NumPrimitives() primitive.Table {
	var t primitive.Table

	binOp := func(sig string, apply func(a, b float64) float64) {
		bind(&t, "Num", sig, false, func(ctx value.PrimitiveContext, args []value.Value) bool {
			a, _ := args[0].AsNum()
			b, ok := expectNum(ctx, args, 1, "Right operand")
			if !ok {
				return false
			}
			args[0] = value.NewNum(apply(a, b))
			return true
		})
	}
	binCmp := func(sig string, apply func(a, b float64) bool) {
		bind(&t, "Num", sig, false, func(ctx value.PrimitiveContext, args []value.Value) bool {
			a, _ := args[0].AsNum()
			b, ok := expectNum(ctx, args, 1, "Right operand")
			if !ok {
				return false
			}
			args[0] = value.NewBool(apply(a, b))
			return true
		})
	}
	bitwise := func(sig string, apply func(a, b uint32) uint32) {
		bind(&t, "Num", sig, false, func(ctx value.PrimitiveContext, args []value.Value) bool {
			a, _ := args[0].AsNum()
			b, ok := expectNum(ctx, args, 1, "Right operand")
			if !ok {
				return false
			}
			args[0] = value.NewNum(float64(apply(asUint32(a), asUint32(b))))
			return true
		})
	}

	binOp("+(_)", func(a, b float64) float64 { return a + b })
	binOp("-(_)", func(a, b float64) float64 { return a - b })
	binOp("*(_)", func(a, b float64) float64 { return a * b })
	binOp("/(_)", func(a, b float64) float64 { return a / b })
	binOp("%(_)", func(a, b float64) float64 { return math.Mod(a, b) })

	binCmp("<(_)", func(a, b float64) bool { return a < b })
	binCmp(">(_)", func(a, b float64) bool { return a > b })
	binCmp("<=(_)", func(a, b float64) bool { return a <= b })
	binCmp(">=(_)", func(a, b float64) bool { return a >= b })

	bitwise("&(_)", func(a, b uint32) uint32 { return a & b })
	bitwise("|(_)", func(a, b uint32) uint32 { return a | b })
	bitwise("^(_)", func(a, b uint32) uint32 { return a ^ b })
	bitwise("<<(_)", func(a, b uint32) uint32 { return a << (b & 31) })
	bitwise(">>(_)", func(a, b uint32) uint32 { return a >> (b & 31) })

	// Equality with a non-Num returns false, not an error (spec.md §4.4).
	bind(&t, "Num", "==(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		b, ok := args[1].AsNum()
		a, _ := args[0].AsNum()
		args[0] = value.NewBool(ok && a == b)
		return true
	})
	bind(&t, "Num", "!=(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		b, ok := args[1].AsNum()
		a, _ := args[0].AsNum()
		args[0] = value.NewBool(!ok || a != b)
		return true
	})

	bind(&t, "Num", "-", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewNum(-a)
		return true
	})
	bind(&t, "Num", "~", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewNum(float64(^asUint32(a)))
		return true
	})

	bind(&t, "Num", "..(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		b, ok := expectNum(ctx, args, 1, "Right hand side of range")
		if !ok {
			return false
		}
		args[0] = ctx.NewRange(a, b, true).Value()
		return true
	})
	bind(&t, "Num", "...(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		b, ok := expectNum(ctx, args, 1, "Right hand side of range")
		if !ok {
			return false
		}
		args[0] = ctx.NewRange(a, b, false).Value()
		return true
	})

	bind(&t, "Num", "abs", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewNum(math.Abs(a))
		return true
	})
	bind(&t, "Num", "ceil", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewNum(math.Ceil(a))
		return true
	})
	bind(&t, "Num", "floor", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewNum(math.Floor(a))
		return true
	})
	bind(&t, "Num", "round", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewNum(math.Round(a))
		return true
	})
	bind(&t, "Num", "sqrt", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewNum(math.Sqrt(a))
		return true
	})
	bind(&t, "Num", "sign", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		switch {
		case a > 0:
			args[0] = value.NewNum(1)
		case a < 0:
			args[0] = value.NewNum(-1)
		default:
			args[0] = value.NewNum(0)
		}
		return true
	})
	bind(&t, "Num", "fraction", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		intPart := math.Trunc(a)
		args[0] = value.NewNum(a - intPart)
		return true
	})
	bind(&t, "Num", "truncate", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewNum(math.Trunc(a))
		return true
	})
	bind(&t, "Num", "isNan", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewBool(math.IsNaN(a))
		return true
	})
	bind(&t, "Num", "isInfinity", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewBool(math.IsInf(a, 0))
		return true
	})
	bind(&t, "Num", "isInteger", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = value.NewBool(!math.IsNaN(a) && !math.IsInf(a, 0) && a == math.Trunc(a))
		return true
	})
	bind(&t, "Num", "clamp(_,_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		lo, ok := expectNum(ctx, args, 1, "Lower bound")
		if !ok {
			return false
		}
		hi, ok := expectNum(ctx, args, 2, "Upper bound")
		if !ok {
			return false
		}
		switch {
		case a < lo:
			args[0] = value.NewNum(lo)
		case a > hi:
			args[0] = value.NewNum(hi)
		default:
			args[0] = value.NewNum(a)
		}
		return true
	})
	bind(&t, "Num", "toString", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		args[0] = ctx.NewString(strconv.FormatFloat(a, 'g', -1, 64))
		return true
	})

	for _, fn := range []struct {
		sig string
		f   func(float64) float64
	}{
		{"sin", math.Sin}, {"cos", math.Cos}, {"tan", math.Tan},
		{"asin", math.Asin}, {"acos", math.Acos}, {"atan", math.Atan},
		{"log", math.Log}, {"log2", math.Log2}, {"exp", math.Exp},
	} {
		f := fn.f
		bind(&t, "Num", fn.sig, false, func(ctx value.PrimitiveContext, args []value.Value) bool {
			a, _ := args[0].AsNum()
			args[0] = value.NewNum(f(a))
			return true
		})
	}
	bind(&t, "Num", "atan(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		b, ok := expectNum(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		args[0] = value.NewNum(math.Atan2(a, b))
		return true
	})
	bind(&t, "Num", "pow(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a, _ := args[0].AsNum()
		b, ok := expectNum(ctx, args, 1, "Power")
		if !ok {
			return false
		}
		args[0] = value.NewNum(math.Pow(a, b))
		return true
	})

	// Class-side constants and parsing (spec.md §6's numeric constants
	// table): all bound onMetaclass since they are Num-the-class methods.
	bind(&t, "Num", "infinity", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(math.Inf(1))
		return true
	})
	bind(&t, "Num", "nan", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(math.NaN())
		return true
	})
	bind(&t, "Num", "pi", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(3.14159265358979323846264338327950288)
		return true
	})
	bind(&t, "Num", "tau", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(6.28318530717958647692528676655900577)
		return true
	})
	bind(&t, "Num", "largest", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(math.MaxFloat64)
		return true
	})
	bind(&t, "Num", "smallest", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(math.SmallestNonzeroFloat64 * (1 << 52))
		return true
	})
	bind(&t, "Num", "maxSafeInteger", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(9007199254740991)
		return true
	})
	bind(&t, "Num", "minSafeInteger", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(-9007199254740991)
		return true
	})
	bind(&t, "Num", "fromString(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		n, err := strconv.ParseFloat(s.Text, 64)
		if err != nil {
			args[0] = value.Null
			return true
		}
		args[0] = value.NewNum(n)
		return true
	})

	return t
}
