package corelib

import (
	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// FnPrimitives returns the Fn class's primitives. `call` through its 16
// arities is registered as FunctionCall (spec.md §4.2): the interpreter
// transfers control into the closure rather than running inline, which
// this port models by invoking Native directly on the current fiber
// (the same call shape the bootstrap's declared classes and the VM's
// own script closures use, since the compiler/interpreter loop proper
// is out of core scope — spec.md §1).
func FnPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "Fn", "new(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		c := args[1].AsClosure()
		if c == nil {
			return runtimeError(ctx, "Argument must be a function.")
		}
		args[0] = args[1]
		return true
	})
	bind(&t, "Fn", "arity", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		c := args[0].AsClosure()
		args[0] = value.NewNum(float64(c.Arity()))
		return true
	})

	for arity := 0; arity <= 16; arity++ {
		sig := "call("
		for i := 0; i < arity; i++ {
			if i > 0 {
				sig += ","
			}
			sig += "_"
		}
		sig += ")"
		t.Bind("Fn", sig, primitive.FunctionCall, false, func(ctx value.PrimitiveContext, args []value.Value) bool {
			c := args[0].AsClosure()
			if c == nil || c.Native == nil {
				return runtimeError(ctx, "Receiver does not respond to 'call'.")
			}
			result := c.Native(ctx, ctx.CurrentFiber(), args)
			args[0] = result
			return true
		})
	}

	return t
}
