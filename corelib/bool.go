package corelib

import (
	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// BoolPrimitives returns the Bool class's primitives: negation, equality,
// and stringification (spec.md §4.4 mentions Bool only in passing; its
// semantics follow Object's default identity rules narrowed to the two
// singletons True/False).
func BoolPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "Bool", "!", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		b, _ := args[0].AsBool()
		args[0] = value.NewBool(!b)
		return true
	})
	bind(&t, "Bool", "toString", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		b, _ := args[0].AsBool()
		if b {
			args[0] = ctx.NewString("true")
		} else {
			args[0] = ctx.NewString("false")
		}
		return true
	})
	bind(&t, "Bool", "==(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(value.Equal(args[0], args[1]))
		return true
	})
	bind(&t, "Bool", "!=(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(!value.Equal(args[0], args[1]))
		return true
	})

	return t
}
