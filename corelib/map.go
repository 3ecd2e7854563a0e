package corelib

import (
	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// MapPrimitives returns Map's primitives. spec.md §3 treats Map as a
// collaborator ("specified only as a collaborator here") rather than
// detailing its full primitive surface the way List and Range are
// detailed; this wires just enough of value.ObjMap's operations
// (count, subscript get/set, containsKey, remove) to make Map usable
// from scripts, mirroring the level of detail the teacher gives its
// own collaborator-only runtime helpers.
func MapPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "Map", "count", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		m := args[0].AsMap()
		args[0] = value.NewNum(float64(m.Count()))
		return true
	})
	bind(&t, "Map", "[_]", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		m := args[0].AsMap()
		v, ok := m.Get(args[1])
		if !ok {
			args[0] = value.Null
		} else {
			args[0] = v
		}
		return true
	})
	bind(&t, "Map", "[_]=(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		m := args[0].AsMap()
		m.Set(args[1], args[2])
		args[0] = args[2]
		return true
	})
	bind(&t, "Map", "containsKey(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		m := args[0].AsMap()
		args[0] = value.NewBool(m.ContainsKey(args[1]))
		return true
	})
	bind(&t, "Map", "remove(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		m := args[0].AsMap()
		v, ok := m.Get(args[1])
		m.Delete(args[1])
		if !ok {
			args[0] = value.Null
		} else {
			args[0] = v
		}
		return true
	})
	bind(&t, "Map", "clear()", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		m := args[0].AsMap()
		m.Each(func(k, _ value.Value) { m.Delete(k) })
		args[0] = value.Null
		return true
	})
	bind(&t, "Map", "new()", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = ctx.NewMap().Value()
		return true
	})

	return t
}
