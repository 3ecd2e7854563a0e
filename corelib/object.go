package corelib

import (
	"fmt"
	"math"

	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// ObjectPrimitives returns the Object root class's primitives: identity
// equality, negation, `is`, `type`, and default stringification, plus
// the Class primitives (name, supertype, toString) and ObjectMetaclass's
// `same` (spec.md §4.4's Object (root) section).
func ObjectPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "Object", "==(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(identityEqual(args[0], args[1]))
		return true
	})
	bind(&t, "Object", "!=(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(!identityEqual(args[0], args[1]))
		return true
	})
	bind(&t, "Object", "!", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(false)
		return true
	})
	bind(&t, "Object", "is(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		target := args[1].AsClass()
		if target == nil {
			return runtimeError(ctx, "Right operand must be a class.")
		}
		args[0] = value.NewBool(args[0].ClassOf(ctx.Roots()).Is(target))
		return true
	})
	bind(&t, "Object", "type", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = args[0].ClassOf(ctx.Roots()).Value()
		return true
	})
	bind(&t, "Object", "toString", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		cls := args[0].ClassOf(ctx.Roots())
		args[0] = ctx.NewString("instance of " + cls.Name)
		return true
	})
	bind(&t, "Object", "hash", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewNum(float64(objectHash(args[0])))
		return true
	})

	bind(&t, "Class", "name", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		c := args[0].AsClass()
		args[0] = ctx.NewString(c.Name)
		return true
	})
	bind(&t, "Class", "supertype", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		c := args[0].AsClass()
		if c.Superclass == nil {
			args[0] = value.Null
		} else {
			args[0] = c.Superclass.Value()
		}
		return true
	})
	bind(&t, "Class", "toString", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		c := args[0].AsClass()
		args[0] = ctx.NewString(c.Name)
		return true
	})
	bind(&t, "Class", "attributes", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		c := args[0].AsClass()
		if c.Attributes == nil {
			args[0] = value.Null
		} else {
			args[0] = c.Attributes.Value()
		}
		return true
	})

	bind(&t, "Object", "same(_,_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(identityEqual(args[1], args[2]))
		return true
	})

	return t
}

// identityEqual implements Object's default ==: identical encoding,
// with the string byte-equality carve-out from spec.md §3's Equal
// still applying (Object.==  delegates to the same rule unless a
// subclass overrides it, e.g. Num and String both do in this port).
func identityEqual(a, b value.Value) bool { return value.Equal(a, b) }

// objectHash gives every value a stable hash for use as a Map key
// (spec.md §9's supplemented Object.hash accessor): strings reuse their
// precomputed FNV-1a hash, numbers hash their bit pattern, everything
// else hashes by heap identity or by a fixed constant for the
// singletons.
func objectHash(v value.Value) uint64 {
	switch {
	case v.IsString():
		return v.AsString().Hash()
	case v.IsNum():
		n, _ := v.AsNum()
		return math.Float64bits(n)
	case v.IsBool():
		b, _ := v.AsBool()
		if b {
			return 1
		}
		return 0
	case v.IsNull():
		return 0
	case v.IsObj():
		return fnv1a(fmt.Sprintf("%p", v.Obj()))
	default:
		return 0
	}
}

func fnv1a(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
