package corelib

import (
	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// NullPrimitives returns the Null class's primitives. Null is falsy and
// always stringifies to "null" (spec.md §4.4's Object defaults, narrowed
// to the single Null singleton).
func NullPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "Null", "!", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(true)
		return true
	})
	bind(&t, "Null", "toString", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = ctx.NewString("null")
		return true
	})

	return t
}
