package corelib

import (
	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// FiberPrimitives returns the Fiber class's primitives: call, transfer,
// try, yield, abort, suspend and the reflective accessors (spec.md
// §4.3). Precondition checks (not aborted, not already called, not
// root, not finished) are enforced here before delegating to
// value.Fiber's scheduling methods.
func FiberPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "Fiber", "new(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		c := args[1].AsClosure()
		if c == nil {
			return runtimeError(ctx, "Argument must be a function.")
		}
		if c.Arity() > 1 {
			return runtimeError(ctx, "Function cannot take more than one parameter.")
		}
		args[0] = value.NewFiber(c).Value()
		return true
	})

	callLike := func(sig string, isTry bool) {
		bind(&t, "Fiber", sig, false, func(ctx value.PrimitiveContext, args []value.Value) bool {
			target := args[0].AsFiber()
			if err, msg := checkRunnable(target); err {
				return runtimeError(ctx, msg)
			}
			arg := value.Null
			if len(args) > 1 {
				arg = args[1]
			}
			caller := ctx.CurrentFiber()
			ctx.SetCurrentFiber(target)
			var msg value.Value
			var isError bool
			if isTry {
				msg, isError = target.Try(ctx, caller, arg)
			} else {
				msg, isError = target.Call(ctx, caller, arg)
			}
			if isError && target.State == value.FiberTry {
				ctx.SetCurrentFiber(caller)
				args[0] = msg
				return true
			}
			if isError {
				ctx.SetCurrentFiber(caller)
				caller.Error = msg
				return false
			}
			ctx.SetCurrentFiber(caller)
			args[0] = msg
			return true
		})
	}
	callLike("call()", false)
	callLike("call(_)", false)
	callLike("try()", true)
	callLike("try(_)", true)

	bind(&t, "Fiber", "transfer()", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		return doTransfer(ctx, args, value.Null, false)
	})
	bind(&t, "Fiber", "transfer(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		return doTransfer(ctx, args, args[1], false)
	})
	bind(&t, "Fiber", "transferError(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		return doTransfer(ctx, args, args[1], true)
	})

	bind(&t, "Fiber", "yield()", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = ctx.CurrentFiber().Yield(value.Null)
		return true
	})
	bind(&t, "Fiber", "yield(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = ctx.CurrentFiber().Yield(args[1])
		return true
	})
	bind(&t, "Fiber", "abort(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		if args[1].IsNull() {
			args[0] = value.NewBool(true)
			return true
		}
		ctx.CurrentFiber().Abort(args[1])
		return false
	})
	bind(&t, "Fiber", "suspend()", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = ctx.CurrentFiber().Suspend()
		return true
	})
	bind(&t, "Fiber", "current", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = ctx.CurrentFiber().Value()
		return true
	})

	bind(&t, "Fiber", "isDone", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		f := args[0].AsFiber()
		args[0] = value.NewBool(f.IsDone())
		return true
	})
	bind(&t, "Fiber", "error", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		f := args[0].AsFiber()
		args[0] = f.Error
		return true
	})

	return t
}

// checkRunnable enforces spec.md §4.3's call/try preconditions: target
// is not aborted, not already called, not root, not finished.
func checkRunnable(f *value.Fiber) (bool, string) {
	if f.IsAborted() {
		return true, "Cannot call an aborted fiber."
	}
	if f.IsDone() {
		return true, "Cannot call a finished fiber."
	}
	if f.State == value.FiberRoot {
		return true, "Cannot call a root fiber."
	}
	if f.Caller != nil {
		return true, "Fiber has already been called."
	}
	return false, ""
}

func doTransfer(ctx value.PrimitiveContext, args []value.Value, arg value.Value, isError bool) bool {
	target := args[0].AsFiber()
	if target.IsDone() {
		return runtimeError(ctx, "Cannot transfer to a finished fiber.")
	}
	self := ctx.CurrentFiber()
	ctx.SetCurrentFiber(target)
	var result value.Value
	if isError {
		result = value.TransferError(ctx, self, target, arg)
	} else {
		result = value.Transfer(ctx, self, target, arg)
	}
	ctx.SetCurrentFiber(self)
	args[0] = result
	return true
}
