package corelib

import "github.com/redthing1/wren-port/primitive"

// All merges every receiver's primitive table into the one set
// corevm.Bootstrap applies while walking the declared classes (spec.md
// §4.5 step 6), mirroring the teacher's pattern of assembling its full
// builtin surface from many GetXFunctions() calls (see e.g.
// runtime/extension.go's registration of each category in turn).
func All() primitive.Table {
	return primitive.Merge(
		ObjectPrimitives(),
		BoolPrimitives(),
		NullPrimitives(),
		NumPrimitives(),
		StringPrimitives(),
		ListPrimitives(),
		MapPrimitives(),
		RangePrimitives(),
		FnPrimitives(),
		FiberPrimitives(),
		SystemPrimitives(),
	)
}
