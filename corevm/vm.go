// Package corevm implements the VM: the module table, the GC object
// list, the current fiber, host configuration, and the Bootstrap
// orchestration of spec.md §4.5's seven steps. VM implements
// value.PrimitiveContext, the interface corelib's primitive bodies call
// back through, so corelib and value never import this package (the
// same import-cycle-avoidance shape as the teacher's concrete
// ExecutionContext implementing registry.BuiltinCallContext).
package corevm

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redthing1/wren-port/corelib"
	"github.com/redthing1/wren-port/hostcfg"
	"github.com/redthing1/wren-port/script"
	"github.com/redthing1/wren-port/scripterr"
	"github.com/redthing1/wren-port/value"
)

// VM owns every piece of process state spec.md §2's data flow and §5's
// "shared resources" list name: the module table, the object list, the
// current fiber, the root classes, and the host configuration.
type VM struct {
	ID     uuid.UUID
	config hostcfg.Config

	reporter *scripterr.Reporter

	modules    map[string]*value.ObjModule
	objects    value.ObjectList
	roots      value.RootClasses
	classClass *value.Class

	currentFiber *value.Fiber
	rootStack    []value.Value

	startTime time.Time
}

// New constructs an un-bootstrapped VM. Call Bootstrap before running
// any script-level code.
func New(config hostcfg.Config) *VM {
	vm := &VM{
		ID:        uuid.New(),
		config:    config,
		modules:   make(map[string]*value.ObjModule),
		startTime: time.Now(),
	}
	vm.reporter = scripterr.NewReporter(func(e *scripterr.Error) {
		if vm.config.Error == nil {
			return
		}
		kind := hostcfg.CompileError
		switch e.Kind {
		case scripterr.Runtime:
			kind = hostcfg.RuntimeError
		case scripterr.StackTrace:
			kind = hostcfg.StackTraceError
		}
		vm.config.Error(kind, e.Module, e.Line, e.Message)
	})
	return vm
}

// Reporter exposes the diagnostics sink so a host driver can forward
// bootstrap/compile failures the same way it would for any other
// script source.
func (vm *VM) Reporter() *scripterr.Reporter { return vm.reporter }

// CoreModule returns the module registered under the null key in
// step 1 of bootstrap.
func (vm *VM) CoreModule() *value.ObjModule { return vm.modules[""] }

// Bootstrap runs spec.md §4.5's seven steps. Any failure is fatal, per
// the spec's "the interpret step must succeed" requirement.
func (vm *VM) Bootstrap() error {
	// Step 1: the core module, registered under the null ("") key.
	core := value.NewModule("")
	vm.modules[""] = core

	// Step 2: Object, no superclass. Its metaclass doesn't exist yet, so
	// applying its primitive table now only binds the instance-side
	// entries (Object metaclass.same(_,_) is deferred to step 4).
	object := value.NewClass("Object")
	vm.objects.Push(object.Header())
	core.Define("Object", object.Value())
	vm.roots.Object = object

	objectTable := corelib.ObjectPrimitives()
	objectTable.Apply("Object", object)

	// Step 3: Class, bound to Object.
	classCls := value.NewClass("Class")
	classCls.BindSuperclass(object)
	vm.objects.Push(classCls.Header())
	core.Define("Class", classCls.Value())
	vm.classClass = classCls

	// Step 4: Object metaclass; wire the triangle.
	objectMeta := value.NewClass("Object metaclass")
	vm.objects.Push(objectMeta.Header())

	object.Obj.Class = objectMeta
	objectMeta.Obj.Class = classCls
	classCls.Obj.Class = classCls
	objectMeta.BindSuperclass(classCls)
	core.Define("Object metaclass", objectMeta.Value())

	// Re-apply now that object's metaclass exists (binds same(_,_)), and
	// apply Class's own primitives (name/supertype/toString/attributes).
	objectTable.Apply("Object", object)
	objectTable.Apply("Class", classCls)

	// Step 5: interpret the embedded bootstrap script, declaring the
	// rest of the core classes.
	result, err := script.Interpret(vm, "", script.Source)
	if err != nil {
		if _, ok := err.(*script.CompileErr); ok {
			vm.reporter.Compile("", err.(*script.CompileErr).Line, err.Error())
		} else {
			vm.reporter.Runtime("", 0, err.Error())
		}
		return fmt.Errorf("bootstrap script interpret failed (%s): %w", result, err)
	}

	// Step 6: attach primitives for every declared class, including the
	// two built by hand above so their corelib-file primitives (the bulk
	// of Object's and Class's surface) are in one place.
	all := corelib.All()
	for _, name := range core.Names() {
		v, _ := core.Lookup(name)
		cls := v.AsClass()
		if cls == nil {
			continue
		}
		all.Apply(name, cls)
	}

	if v, ok := core.Lookup("Bool"); ok {
		vm.roots.Bool = v.AsClass()
	}
	if v, ok := core.Lookup("Num"); ok {
		vm.roots.Num = v.AsClass()
	}
	if v, ok := core.Lookup("Null"); ok {
		vm.roots.Null = v.AsClass()
	}
	if vm.roots.Bool == nil || vm.roots.Num == nil || vm.roots.Null == nil {
		return fmt.Errorf("bootstrap script did not declare a required root class")
	}

	// Step 7: rewire orphan strings — any allocated before the String
	// class existed received a null class pointer (spec.md §3).
	if v, ok := core.Lookup("String"); ok {
		if strCls := v.AsClass(); strCls != nil {
			vm.objects.Each(func(o *value.Obj) {
				if o.Kind == value.ObjString && o.Class == nil {
					o.Class = strCls
				}
			})
		}
	}

	// The VM always has exactly one current fiber; until a host runs
	// something, that is a fresh root fiber.
	vm.currentFiber = value.NewRootFiber(nil)

	return nil
}

// DeclareClass implements script.Declarer: it builds decl's class and
// its automatic metaclass (spec.md §4.2 "the metaclass of a user class
// is constructed automatically as a subclass of the superclass's
// metaclass"), reserves a method slot (tagged MethodForeign, a legal
// "slot never read uninitialized" placeholder per spec.md §3) for every
// declared member, and defines the class in moduleName. Step 6 of
// Bootstrap later overwrites each placeholder with the matching
// primitive from corelib.All().
func (vm *VM) DeclareClass(moduleName string, decl script.ClassDecl) error {
	module, ok := vm.modules[moduleName]
	if !ok {
		return fmt.Errorf("declare %s: unknown module %q", decl.Name, moduleName)
	}

	superName := decl.Superclass
	if superName == "" {
		superName = "Object"
	}
	superVal, ok := module.Lookup(superName)
	if !ok {
		return fmt.Errorf("declare %s: superclass %q not yet declared", decl.Name, superName)
	}
	super := superVal.AsClass()
	if super == nil {
		return fmt.Errorf("declare %s: %q is not a class", decl.Name, superName)
	}

	cls := value.NewClass(decl.Name)
	cls.BindSuperclass(super)
	vm.objects.Push(cls.Header())

	meta := value.NewClass(decl.Name + " metaclass")
	if superMeta := super.Header().Class; superMeta != nil {
		meta.BindSuperclass(superMeta)
	}
	meta.Obj.Class = vm.classClass
	vm.objects.Push(meta.Header())

	cls.Obj.Class = meta

	for _, m := range decl.Members {
		target := cls
		if m.IsStatic {
			target = meta
		}
		sig := value.InternSignature(m.Signature)
		target.BindMethod(sig, value.MethodSlot{Kind: value.MethodForeign})
	}

	module.Define(decl.Name, cls.Value())
	return nil
}

var _ value.PrimitiveContext = (*VM)(nil)
var _ script.Declarer = (*VM)(nil)
