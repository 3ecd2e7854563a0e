package value

// Type is the Value's own discriminant. This port represents Value as a
// discriminated record rather than a NaN-boxed 64-bit cell — see
// DESIGN.md's "Value encoding" decision — which is the other encoding
// spec.md §3 explicitly allows.
type Type byte

const (
	TypeNull Type = iota
	TypeUndefined
	TypeBool
	TypeNum
	TypeObj
)

// Value is the uniform tagged cell every slot in the runtime holds: a
// fiber's value stack, a list's elements, an instance's fields, a
// module's variables.
type Value struct {
	typ Type
	num float64
	b   bool
	obj *Obj
}

// Null is the singleton null value.
var Null = Value{typ: TypeNull}

// Undefined is the singleton undefined value, used internally for
// not-yet-initialized module variables; scripts never observe it
// directly as a distinct literal the way they do null.
var Undefined = Value{typ: TypeUndefined}

// True and False are the singleton booleans.
var True = Value{typ: TypeBool, b: true}
var False = Value{typ: TypeBool, b: false}

// NewNum wraps a double.
func NewNum(n float64) Value { return Value{typ: TypeNum, num: n} }

// NewBool wraps a bool.
func NewBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// NewObj wraps a heap object pointer.
func NewObj(o *Obj) Value { return Value{typ: TypeObj, obj: o} }

// IsNull, IsUndefined, IsBool, IsNum, IsObj are the coarse type
// predicates from spec.md §4.1.
func (v Value) IsNull() bool      { return v.typ == TypeNull }
func (v Value) IsUndefined() bool { return v.typ == TypeUndefined }
func (v Value) IsBool() bool      { return v.typ == TypeBool }
func (v Value) IsNum() bool       { return v.typ == TypeNum }
func (v Value) IsObj() bool       { return v.typ == TypeObj }

func (v Value) objKind(k ObjKind) bool { return v.typ == TypeObj && v.obj.Kind == k }

func (v Value) IsString() bool   { return v.objKind(ObjString) }
func (v Value) IsList() bool     { return v.objKind(ObjListKind) }
func (v Value) IsMap() bool      { return v.objKind(ObjMapKind) }
func (v Value) IsRange() bool    { return v.objKind(ObjRangeKind) }
func (v Value) IsModule() bool   { return v.objKind(ObjModuleKind) }
func (v Value) IsFunction() bool { return v.objKind(ObjFunctionKind) }
func (v Value) IsClosure() bool  { return v.objKind(ObjClosureKind) }
func (v Value) IsClass() bool    { return v.objKind(ObjClassKind) }
func (v Value) IsInstance() bool { return v.objKind(ObjInstanceKind) }
func (v Value) IsFiber() bool    { return v.objKind(ObjFiberKind) }
func (v Value) IsForeign() bool  { return v.objKind(ObjForeignKind) }

// Truthy follows Wren-style truthiness: everything except null and
// false is truthy (unlike PHP, the teacher's domain, where "" and "0"
// are also falsy — spec.md §4.4's Bool/Object primitives never mention
// that, so this port does not carry it over).
func (v Value) Truthy() bool {
	switch v.typ {
	case TypeNull, TypeUndefined:
		return false
	case TypeBool:
		return v.b
	default:
		return true
	}
}

// AsNum returns the wrapped double and whether v actually held one.
func (v Value) AsNum() (float64, bool) {
	if v.typ != TypeNum {
		return 0, false
	}
	return v.num, true
}

// AsBool returns the wrapped bool and whether v actually held one.
func (v Value) AsBool() (bool, bool) {
	if v.typ != TypeBool {
		return false, false
	}
	return v.b, true
}

// Obj returns the heap object header, or nil if v is not an object.
func (v Value) Obj() *Obj {
	if v.typ != TypeObj {
		return nil
	}
	return v.obj
}

// AsString returns the underlying ObjString, or nil.
func (v Value) AsString() *ObjString {
	if !v.IsString() {
		return nil
	}
	return v.obj.Payload.(*ObjString)
}

// AsList returns the underlying ObjList, or nil.
func (v Value) AsList() *ObjList {
	if !v.IsList() {
		return nil
	}
	return v.obj.Payload.(*ObjList)
}

// AsMap returns the underlying ObjMap, or nil.
func (v Value) AsMap() *ObjMap {
	if !v.IsMap() {
		return nil
	}
	return v.obj.Payload.(*ObjMap)
}

// AsRange returns the underlying ObjRange, or nil.
func (v Value) AsRange() *ObjRange {
	if !v.IsRange() {
		return nil
	}
	return v.obj.Payload.(*ObjRange)
}

// AsClosure returns the underlying ObjClosure, or nil.
func (v Value) AsClosure() *ObjClosure {
	if !v.IsClosure() {
		return nil
	}
	return v.obj.Payload.(*ObjClosure)
}

// AsClass returns the underlying Class, or nil.
func (v Value) AsClass() *Class {
	if !v.IsClass() {
		return nil
	}
	return v.obj.Payload.(*Class)
}

// AsInstance returns the underlying ObjInstance, or nil.
func (v Value) AsInstance() *ObjInstance {
	if !v.IsInstance() {
		return nil
	}
	return v.obj.Payload.(*ObjInstance)
}

// AsFiber returns the underlying Fiber, or nil.
func (v Value) AsFiber() *Fiber {
	if !v.IsFiber() {
		return nil
	}
	return v.obj.Payload.(*Fiber)
}

// AsForeign returns the underlying ObjForeign, or nil.
func (v Value) AsForeign() *ObjForeign {
	if !v.IsForeign() {
		return nil
	}
	return v.obj.Payload.(*ObjForeign)
}

// ClassOf returns the runtime class of v. Every live object has a
// non-null Class after bootstrap (spec.md §3's central invariant); the
// only value kinds whose class is looked up by hand here (rather than
// via the Obj header) are the non-heap kinds Null, Bool and Num, whose
// class pointers live on the VM's root-class table.
func (v Value) ClassOf(roots *RootClasses) *Class {
	switch v.typ {
	case TypeNull, TypeUndefined:
		return roots.Null
	case TypeBool:
		return roots.Bool
	case TypeNum:
		return roots.Num
	case TypeObj:
		return v.obj.Class
	default:
		return nil
	}
}

// RootClasses is the small bundle of always-present root classes that
// Value.ClassOf needs for the non-heap kinds; corevm.VM embeds and
// populates one during Bootstrap.
type RootClasses struct {
	Object *Class
	Bool   *Class
	Num    *Class
	Null   *Class
}

// Equal implements spec.md §3's value equality: identical encoding, plus
// byte-identical strings compare equal even across distinct objects; all
// other heap objects compare by identity.
func Equal(a, b Value) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case TypeNull, TypeUndefined:
		return true
	case TypeBool:
		return a.b == b.b
	case TypeNum:
		return a.num == b.num
	case TypeObj:
		if a.obj == b.obj {
			return true
		}
		if a.IsString() && b.IsString() {
			return a.AsString().Text == b.AsString().Text
		}
		return false
	default:
		return false
	}
}
