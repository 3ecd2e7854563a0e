package corelib

import (
	"strings"

	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// StringPrimitives returns the String class's primitives: byte and
// code-point indexing, search, concatenation, and the $ operator's
// host delegation (spec.md §4.4).
func StringPrimitives() primitive.Table {
	var t primitive.Table

	bind(&t, "String", "+(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		a := args[0].AsString()
		b, ok := expectString(ctx, args, 1, "Right operand")
		if !ok {
			return false
		}
		args[0] = ctx.NewString(a.Text + b.Text)
		return true
	})
	bind(&t, "String", "==(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(value.Equal(args[0], args[1]))
		return true
	})
	bind(&t, "String", "!=(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		args[0] = value.NewBool(!value.Equal(args[0], args[1]))
		return true
	})
	bind(&t, "String", "toString", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		return true
	})
	bind(&t, "String", "count", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		args[0] = value.NewNum(float64(s.CodePointCount()))
		return true
	})
	bind(&t, "String", "byteCount_", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		args[0] = value.NewNum(float64(s.ByteCount()))
		return true
	})
	bind(&t, "String", "byteAt_(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		i, ok := expectInt(ctx, args, 1, "Index")
		if !ok {
			return false
		}
		b, ok := s.ByteAt(i)
		if !ok {
			return runtimeError(ctx, "Index out of bounds.")
		}
		args[0] = value.NewNum(float64(b))
		return true
	})
	bind(&t, "String", "codePointAt_(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		i, ok := expectInt(ctx, args, 1, "Index")
		if !ok {
			return false
		}
		args[0] = value.NewNum(float64(s.CodePointAt(i)))
		return true
	})
	bind(&t, "String", "iterate(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		if args[1].IsNull() {
			next, ok := s.Iterate(-1, false)
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
		next, more := s.Iterate(cur, true)
		if !more {
			args[0] = value.NewBool(false)
		} else {
			args[0] = value.NewNum(float64(next))
		}
		return true
	})
	bind(&t, "String", "iteratorValue(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		i, ok := expectInt(ctx, args, 1, "Iterator")
		if !ok {
			return false
		}
		cp, ok2 := s.CodePointStringAt(i)
		if !ok2 {
			return runtimeError(ctx, "Iterator out of bounds.")
		}
		args[0] = ctx.NewString(cp)
		return true
	})
	bind(&t, "String", "contains(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		needle, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		args[0] = value.NewBool(strings.Contains(s.Text, needle.Text))
		return true
	})
	bind(&t, "String", "startsWith(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		needle, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		args[0] = value.NewBool(strings.HasPrefix(s.Text, needle.Text))
		return true
	})
	bind(&t, "String", "endsWith(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		needle, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		args[0] = value.NewBool(strings.HasSuffix(s.Text, needle.Text))
		return true
	})
	bind(&t, "String", "indexOf(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		needle, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		args[0] = value.NewNum(float64(strings.Index(s.Text, needle.Text)))
		return true
	})
	bind(&t, "String", "indexOf(_,_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		needle, ok := expectString(ctx, args, 1, "Argument")
		if !ok {
			return false
		}
		start, ok := expectInt(ctx, args, 2, "Start")
		if !ok {
			return false
		}
		if start < 0 || start > len(s.Text) {
			args[0] = value.NewNum(-1)
			return true
		}
		idx := strings.Index(s.Text[start:], needle.Text)
		if idx < 0 {
			args[0] = value.NewNum(-1)
		} else {
			args[0] = value.NewNum(float64(idx + start))
		}
		return true
	})
	bind(&t, "String", "[_]", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		s := args[0].AsString()
		if r := args[1].AsRange(); r != nil {
			args[0] = ctx.NewString(sliceByRange(s.Text, r))
			return true
		}
		i, ok := expectInt(ctx, args, 1, "Subscript")
		if !ok {
			return false
		}
		cp, ok2 := s.CodePointStringAt(i)
		if !ok2 {
			return runtimeError(ctx, "String index out of bounds.")
		}
		args[0] = ctx.NewString(cp)
		return true
	})
	bind(&t, "String", "$(_)", false, func(ctx value.PrimitiveContext, args []value.Value) bool {
		result, ok := ctx.Dollar(args[0])
		if !ok {
			args[0] = value.Null
		} else {
			args[0] = result
		}
		return true
	})

	bind(&t, "String", "fromCodePoint(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		cp, ok := expectInt(ctx, args, 1, "Code point")
		if !ok {
			return false
		}
		if cp < 0 {
			return runtimeError(ctx, "Code point cannot be negative.")
		}
		if cp > 0x10FFFF {
			return runtimeError(ctx, "Code point cannot be greater than 0x10ffff.")
		}
		args[0] = ctx.NewString(string(rune(cp)))
		return true
	})
	bind(&t, "String", "fromByte(_)", true, func(ctx value.PrimitiveContext, args []value.Value) bool {
		b, ok := expectInt(ctx, args, 1, "Byte")
		if !ok {
			return false
		}
		if b < 0 || b > 0xFF {
			return runtimeError(ctx, "Byte must be between 0 and 255.")
		}
		args[0] = ctx.NewString(string([]byte{byte(b)}))
		return true
	})

	return t
}

// sliceByRange selects the code points named by r, applying its step,
// composing the new string per spec.md §4.4's "Subscript with a Range
// returns a new string composed of the selected code points with the
// range's step applied."
func sliceByRange(s string, r *value.ObjRange) string {
	runes := []rune(s)
	n := len(runes)
	from := int(r.From)
	to := int(r.To)
	if from < 0 {
		from += n
	}
	if to < 0 {
		to += n
	}
	var b strings.Builder
	if from <= to {
		end := to
		if !r.IsInclusive {
			end--
		}
		for i := from; i <= end && i < n && i >= 0; i++ {
			b.WriteRune(runes[i])
		}
	} else {
		end := to
		if !r.IsInclusive {
			end++
		}
		for i := from; i >= end && i < n && i >= 0; i-- {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
