package corelib

import (
	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// RangePrimitives returns the Range class's primitives: bounds accessors
// and the iteration protocol of spec.md §3/§4.4.
func RangePrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "Range", "from", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		r := args[0].AsRange()
		args[0] = value.NewNum(r.From)
		return true
	})
	bind(&t, "Range", "to", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		r := args[0].AsRange()
		args[0] = value.NewNum(r.To)
		return true
	})
	bind(&t, "Range", "min", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		r := args[0].AsRange()
		args[0] = value.NewNum(r.Min())
		return true
	})
	bind(&t, "Range", "max", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		r := args[0].AsRange()
		args[0] = value.NewNum(r.Max())
		return true
	})
	bind(&t, "Range", "isInclusive", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		r := args[0].AsRange()
		args[0] = value.NewBool(r.IsInclusive)
		return true
	})
	bind(&t, "Range", "toString", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		r := args[0].AsRange()
		args[0] = ctx.NewString(r.String())
		return true
	})
	bind(&t, "Range", "iterate(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		r := args[0].AsRange()
		if args[1].IsNull() {
			next, ok := r.Iterate(0, false)
			if !ok {
				args[0] = value.NewBool(false)
			} else {
				args[0] = value.NewNum(next)
			}
			return true
		}
		cur, ok := expectNum(ctx, args, 1, "Iterator")
		if !ok {
			return false
		}
		next, more := r.Iterate(cur, true)
		if !more {
			args[0] = value.NewBool(false)
		} else {
			args[0] = value.NewNum(next)
		}
		return true
	})
	bind(&t, "Range", "iteratorValue(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		n, ok := expectNum(ctx, args, 1, "Iterator")
		if !ok {
			return false
		}
		args[0] = value.NewNum(n)
		return true
	})

	return t
}
