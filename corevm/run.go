package corevm

import (
	"fmt"

	"github.com/redthing1/wren-port/value"
)

// NewClosure wraps a NativeBody as a zero/one-arity script closure —
// the stand-in this port uses for compiled bytecode (spec.md §1: the
// compiler and bytecode interpreter loop are external collaborators).
// name and arity are metadata only; the VM never validates a call
// against them beyond what Fiber.new's own primitive checks (arity <=
// 1, spec.md §4.3).
func (vm *VM) NewClosure(name string, arity int, body value.NativeBody) *value.ObjClosure {
	fn := value.NewFunction(name, arity)
	fn.Obj.Class = vm.classOrNil("Fn")
	vm.objects.Push(fn.Header())
	c := value.NewClosure(fn, nil, body)
	c.Obj.Class = vm.classOrNil("Fn")
	vm.objects.Push(c.Header())
	return c
}

// Run starts fn on a fresh root fiber and drives it to completion,
// returning its result or the error Value it aborted with (spec.md
// §4.3's "current.caller is null iff current is either the root fiber
// or was entered via transfer"). It is the host-facing analogue of
// wrenInterpret/wrenCallFunction for this port's NativeBody closures
// (spec.md §6); cmd/wrenport's demo and repl subcommands use it
// directly, since the real bytecode compiler is out of core scope.
func (vm *VM) Run(fn *value.ObjClosure) (value.Value, error) {
	root := value.NewRootFiber(fn)
	prev := vm.currentFiber
	vm.currentFiber = root

	result, isError := root.Call(vm, nil, value.Null)

	vm.currentFiber = prev
	if isError {
		return result, fmt.Errorf("runtime error: %s", describeValue(result))
	}
	return result, nil
}

// describeValue renders a Value for error messages without requiring a
// declared toString primitive to already be callable (bootstrap's own
// failures can surface before String exists).
func describeValue(v value.Value) string {
	if s := v.AsString(); s != nil {
		return s.Text
	}
	if n, ok := v.AsNum(); ok {
		return fmt.Sprintf("%g", n)
	}
	if b, ok := v.AsBool(); ok {
		return fmt.Sprintf("%t", b)
	}
	if v.IsNull() {
		return "null"
	}
	return "<value>"
}
