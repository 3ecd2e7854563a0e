package corelib

import (
	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// SystemPrimitives returns System's class-side primitives: clock, gc,
// and the host write callback writeString_ with its write/print_
// wrappers (spec.md §4.4). All five bind onto
// System's metaclass per spec.md §4.5 step 6 ("System primitives
// register onto System's metaclass").
func SystemPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "System", "clock", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(ctx.Clock())
		return true
	})
	bind(&t, "System", "gc()", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		ctx.GC()
		args[0] = value.Null
		return true
	})
	bind(&t, "System", "writeString_(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		ctx.WriteString(s.Text)
		args[0] = args[1]
		return true
	})
	// write/print_ are convenience wrappers around writeString_ matching
	// the well-known core surface (spec.md §9 supplement); print_ appends
	// a trailing newline, write does not.
	bind(&t, "System", "write(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		ctx.WriteString(s.Text)
		args[0] = args[1]
		return true
	})
	bind(&t, "System", "print_(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		ctx.WriteString(s.Text + "\n")
		args[0] = args[1]
		return true
	})

	return t
}
