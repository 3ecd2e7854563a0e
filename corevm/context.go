package corevm

import (
	"time"

	"github.com/redthing1/wren-port/value"
)

// CurrentFiber implements value.PrimitiveContext.
func (vm *VM) CurrentFiber() *value.Fiber { return vm.currentFiber }

// SetCurrentFiber implements value.PrimitiveContext.
func (vm *VM) SetCurrentFiber(f *value.Fiber) { vm.currentFiber = f }

// Roots implements value.PrimitiveContext.
func (vm *VM) Roots() *value.RootClasses { return &vm.roots }

// LookupClass implements value.PrimitiveContext by searching the core
// module's variables, the only place a declared class can live in this
// port (spec.md §1's module loader is an external collaborator; the
// core only ever populates the one module it builds during Bootstrap).
func (vm *VM) LookupClass(name string) (*value.Class, bool) {
	core := vm.modules[""]
	if core == nil {
		return nil, false
	}
	v, ok := core.Lookup(name)
	if !ok {
		return nil, false
	}
	cls := v.AsClass()
	return cls, cls != nil
}

// classOrNil is a small helper shared by every New* allocator below:
// look up className in the core module, returning nil before it has
// been declared (e.g. during steps 1-4 of Bootstrap, before the
// bootstrap script runs).
func (vm *VM) classOrNil(className string) *value.Class {
	cls, _ := vm.LookupClass(className)
	return cls
}

// NewString implements value.PrimitiveContext. A String allocated
// before the String class is declared gets a null Class pointer, which
// Bootstrap's step 7 repairs in one final pass (spec.md §3).
func (vm *VM) NewString(text string) value.Value {
	s := value.NewString(text)
	s.Obj.Class = vm.classOrNil("String")
	vm.objects.Push(s.Header())
	return s.Value()
}

// NewList implements value.PrimitiveContext.
func (vm *VM) NewList() *value.ObjList {
	l := value.NewList()
	l.Obj.Class = vm.classOrNil("List")
	vm.objects.Push(l.Header())
	return l
}

// NewMap implements value.PrimitiveContext.
func (vm *VM) NewMap() *value.ObjMap {
	m := value.NewMap()
	m.Obj.Class = vm.classOrNil("Map")
	vm.objects.Push(m.Header())
	return m
}

// NewRange implements value.PrimitiveContext.
func (vm *VM) NewRange(from, to float64, inclusive bool) *value.ObjRange {
	r := value.NewRange(from, to, inclusive)
	r.Obj.Class = vm.classOrNil("Range")
	vm.objects.Push(r.Header())
	return r
}

// NewInstance implements value.PrimitiveContext.
func (vm *VM) NewInstance(cls *value.Class) *value.ObjInstance {
	inst := value.NewInstance(cls)
	vm.objects.Push(inst.Header())
	return inst
}

// NewForeign implements value.PrimitiveContext.
func (vm *VM) NewForeign(cls *value.Class, data interface{}) *value.ObjForeign {
	f := value.NewForeign(cls, data)
	vm.objects.Push(f.Header())
	return f
}

// WriteString implements value.PrimitiveContext by forwarding to the
// host's configured write callback (spec.md §4.4, §6).
func (vm *VM) WriteString(s string) {
	if vm.config.Write != nil {
		vm.config.Write(s)
	}
}

// Clock implements value.PrimitiveContext: elapsed seconds since the VM
// was constructed, monotonic (spec.md §4.4's System.clock).
func (vm *VM) Clock() float64 {
	return time.Since(vm.startTime).Seconds()
}

// GC implements value.PrimitiveContext. Tracing mark/sweep is an
// external collaborator (spec.md §1); the core only owns the object
// list bookkeeping a real collector would walk. GC only clears mark
// bits so a subsequent trace starts clean; it does not mark, sweep or
// free anything itself.
func (vm *VM) GC() {
	vm.objects.Unmark()
}

// Dollar implements value.PrimitiveContext by forwarding to the host's
// configured `$` operator handler, or reporting "unset" (spec.md §4.4's
// String.$ "returns null if unset").
func (vm *VM) Dollar(receiver value.Value) (value.Value, bool) {
	if vm.config.DollarOperatorFn == nil {
		return value.Null, false
	}
	return vm.config.DollarOperatorFn(receiver)
}
