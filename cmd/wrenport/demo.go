package main

import (
	"fmt"

	"github.com/redthing1/wren-port/corevm"
	"github.com/redthing1/wren-port/value"
)

// demoScenarios reproduces the fiber-centric end-to-end scenarios from
// spec.md §8 as NativeBody closures, since the real bytecode
// compiler/interpreter is an external collaborator (spec.md §1) and
// this port has no parser for arbitrary script text. Scenarios 5 and 6
// (requiring the bootstrap script's own `map`/`toList` support) are
// intentionally absent — they depend on a real language compiler to
// express `{ |x| x*x }` block literals and user-defined methods, which
// this runtime does not have.
var demoScenarios = []scenario{
	{
		name: `"hello".count`,
		run: func(vm *corevm.VM) (string, error) {
			s := vm.NewString("hello")
			cls, _ := vm.LookupClass("String")
			slot := cls.Lookup(value.InternSignature("count"))
			args := []value.Value{s}
			if !slot.Primitive(vm, args) {
				return "", fmt.Errorf("%s", describeResult(vm.CurrentFiber().Error))
			}
			return describeResult(args[0]), nil
		},
	},
	{
		name: "Fiber.new { |x| x + 1 }.call(41)",
		run: func(vm *corevm.VM) (string, error) {
			addOne := vm.NewClosure("addOne", 1, func(ctx value.PrimitiveContext, f *value.Fiber, args []value.Value) value.Value {
				n, _ := args[1].AsNum()
				return value.NewNum(n + 1)
			})
			fiber := value.NewFiber(addOne)
			result, err := vm.Run(wrapCall(vm, fiber, value.NewNum(41)))
			if err != nil {
				return "", err
			}
			return describeResult(result), nil
		},
	},
	{
		name: "yield(7) then 9, then isDone",
		run: func(vm *corevm.VM) (string, error) {
			body := vm.NewClosure("yielder", 0, func(ctx value.PrimitiveContext, f *value.Fiber, args []value.Value) value.Value {
				f.Yield(value.NewNum(7))
				return value.NewNum(9)
			})
			target := value.NewFiber(body)
			caller := vm.CurrentFiber()

			first, _ := target.Call(vm, caller, value.Null)
			second, _ := target.Call(vm, caller, value.Null)
			return fmt.Sprintf("%s, %s, isDone=%t", describeResult(first), describeResult(second), target.IsDone()), nil
		},
	},
	{
		name: `Fiber.new { Fiber.abort("oops") }.try()`,
		run: func(vm *corevm.VM) (string, error) {
			body := vm.NewClosure("aborter", 0, func(ctx value.PrimitiveContext, f *value.Fiber, args []value.Value) value.Value {
				f.Abort(ctx.NewString("oops"))
				return value.Null
			})
			target := value.NewFiber(body)
			result, isErr := target.Try(vm, vm.CurrentFiber(), value.Null)
			_ = isErr
			return describeResult(result), nil
		},
	},
}

// wrapCall builds a closure whose Native, when invoked as a top-level
// root fiber body, immediately calls fiber with arg and returns its
// result — the glue needed because Run always starts a closure on a
// fresh root fiber, but this scenario wants to invoke fiber.call(arg)
// the way a script would.
func wrapCall(vm *corevm.VM, fiber *value.Fiber, arg value.Value) *value.ObjClosure {
	return vm.NewClosure("call-wrapper", 0, func(ctx value.PrimitiveContext, f *value.Fiber, args []value.Value) value.Value {
		result, isErr := fiber.Call(ctx, f, arg)
		if isErr {
			f.Abort(result)
			return value.Null
		}
		return result
	})
}
