// Package corelib implements the ~140 core primitive methods on Bool,
// Num, String, List, Range, Fn, Fiber, Null, Object, Class and System
// (spec.md §4.4), grounded on the teacher's runtime package: one file
// per receiver, each exposing a Primitives() function that returns a
// primitive.Table, mirroring the teacher's GetXFunctions() convention
// (see e.g. runtime/math.go's GetMathFunctions).
package corelib

import (
	"fmt"

	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// runtimeError records msg as a String in the current fiber's error
// slot and returns false, the universal validation-error shape spec.md
// §7 describes ("a primitive records a Value... in the current fiber's
// error slot and returns false").
func runtimeError(ctx value.PrimitiveContext, msg string) bool {
	ctx.CurrentFiber().Error = ctx.NewString(msg)
	return false
}

func runtimeErrorf(ctx value.PrimitiveContext, format string, args ...interface{}) bool {
	return runtimeError(ctx, fmt.Sprintf(format, args...))
}

// expectNum validates args[index] is a Num, raising the conventional
// "Argument must be a number." otherwise.
func expectNum(ctx value.PrimitiveContext, args []value.Value, index int, argName string) (float64, bool) {
	n, ok := args[index].AsNum()
	if !ok {
		runtimeErrorf(ctx, "%s must be a number.", argName)
		return 0, false
	}
	return n, true
}

func expectString(ctx value.PrimitiveContext, args []value.Value, index int, argName string) (*value.ObjString, bool) {
	s := args[index].AsString()
	if s == nil {
		runtimeErrorf(ctx, "%s must be a string.", argName)
		return nil, false
	}
	return s, true
}

func expectInt(ctx value.PrimitiveContext, args []value.Value, index int, argName string) (int, bool) {
	n, ok := expectNum(ctx, args, index, argName)
	if !ok {
		return 0, false
	}
	if n != float64(int(n)) {
		runtimeErrorf(ctx, "%s must be an integer.", argName)
		return 0, false
	}
	return int(n), true
}

// asUint32 reinterprets n as an unsigned 32-bit integer, the convention
// spec.md §4.4 requires for Num's bitwise operators.
func asUint32(n float64) uint32 {
	if n < 0 {
		return uint32(int64(n))
	}
	return uint32(int64(n))
}

// bind is a terse alias used throughout the corelib files to cut the
// per-entry boilerplate of table.Bind(class, sig, primitive.Primitive, onMeta, fn).
func bind(t *primitive.Table, class, sig string, onMetaclass bool, fn value.PrimitiveFn) {
	t.Bind(class, sig, primitive.Primitive, onMetaclass, fn)
}
