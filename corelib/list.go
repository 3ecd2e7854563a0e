package corelib

import (
	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// ListPrimitives returns the List class's primitives: indexing, range
// slicing with step, insert/remove/swap, and the iteration protocol
// (spec.md §4.4, with the §9 iterate off-by-one fix already applied in
// value.ObjList.Iterate).
func ListPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "List", "count", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		args[0] = value.NewNum(float64(l.Count()))
		return true
	})
	bind(&t, "List", "add(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		l.Insert(l.Count(), args[1])
		args[0] = args[1]
		return true
	})
	bind(&t, "List", "insert(_,_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		i, ok := expectInt(ctx, args, 1, "Index")
		if !ok {
			return false
		}
		if i < 0 {
			i += l.Count() + 1
		}
		if i < 0 || i > l.Count() {
			return runtimeError(ctx, "Index out of bounds.")
		}
		l.Insert(i, args[2])
		args[0] = args[2]
		return true
	})
	bind(&t, "List", "removeAt(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		i, ok := expectInt(ctx, args, 1, "Index")
		if !ok {
			return false
		}
		if i < 0 {
			i += l.Count()
		}
		if i < 0 || i >= l.Count() {
			return runtimeError(ctx, "Index out of bounds.")
		}
		args[0] = l.RemoveAt(i)
		return true
	})
	bind(&t, "List", "swap(_,_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		i, ok := expectInt(ctx, args, 1, "Index 0")
		if !ok {
			return false
		}
		j, ok := expectInt(ctx, args, 2, "Index 1")
		if !ok {
			return false
		}
		if i < 0 || i >= l.Count() || j < 0 || j >= l.Count() {
			return runtimeError(ctx, "Index out of bounds.")
		}
		l.Swap(i, j)
		args[0] = value.Null
		return true
	})
	bind(&t, "List", "indexOf(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		args[0] = value.NewNum(float64(l.IndexOf(args[1])))
		return true
	})
	bind(&t, "List", "clear()", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		l.Elements = l.Elements[:0]
		args[0] = value.Null
		return true
	})
	bind(&t, "List", "[_]", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		if r := args[1].AsRange(); r != nil {
			args[0] = sliceListByRange(ctx, l, r)
			return true
		}
		i, ok := expectInt(ctx, args, 1, "Subscript")
		if !ok {
			return false
		}
		if i < 0 {
			i += l.Count()
		}
		if i < 0 || i >= l.Count() {
			return runtimeError(ctx, "Subscript out of bounds.")
		}
		args[0] = l.Elements[i]
		return true
	})
	bind(&t, "List", "[_]=(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		i, ok := expectInt(ctx, args, 1, "Subscript")
		if !ok {
			return false
		}
		if i < 0 {
			i += l.Count()
		}
		if i < 0 || i >= l.Count() {
			return runtimeError(ctx, "Subscript out of bounds.")
		}
		l.Elements[i] = args[2]
		args[0] = args[2]
		return true
	})
	bind(&t, "List", "iterate(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		if args[1].IsNull() {
			next, ok := l.Iterate(0, false)
			if !ok {
				args[0] = value.NewBool(false)
			} else {
				args[0] = value.NewNum(float64(next))
			}
			return true
		}
		cur, ok := expectInt(ctx, args, 1, "Iterator")
		if !ok {
			return false
		}
		next, more := l.Iterate(cur, true)
		if !more {
			args[0] = value.NewBool(false)
		} else {
			args[0] = value.NewNum(float64(next))
		}
		return true
	})
	bind(&t, "List", "iteratorValue(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		l := args[0].AsList()
		i, ok := expectInt(ctx, args, 1, "Iterator")
		if !ok {
			return false
		}
		if i < 0 || i >= l.Count() {
			return runtimeError(ctx, "Iterator out of bounds.")
		}
		args[0] = l.Elements[i]
		return true
	})

	bind(&t, "List", "filled(_,_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		n, ok := expectInt(ctx, args, 1, "Size")
		if !ok {
			return false
		}
		if n < 0 {
			return runtimeError(ctx, "Size cannot be negative.")
		}
		args[0] = value.NewFilledList(n, args[2]).Value()
		return true
	})
	bind(&t, "List", "new()", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = ctx.NewList().Value()
		return true
	})

	return t
}

// sliceListByRange builds the sublist named by r, step taken from its
// direction, matching spec.md §4.4's "step may be negative."
func sliceListByRange(ctx value.PrimitiveContext, l *value.ObjList, r *value.ObjRange) value.Value {
	n := l.Count()
	from := int(r.From)
	to := int(r.To)
	if from < 0 {
		from += n
	}
	if to < 0 {
		to += n
	}
	out := ctx.NewList()
	if from <= to {
		end := to
		if !r.IsInclusive {
			end--
		}
		for i := from; i <= end && i < n && i >= 0; i++ {
			out.Insert(out.Count(), l.Elements[i])
		}
	} else {
		end := to
		if !r.IsInclusive {
			end++
		}
		for i := from; i >= end && i < n && i >= 0; i-- {
			out.Insert(out.Count(), l.Elements[i])
		}
	}
	return out.Value()
}
