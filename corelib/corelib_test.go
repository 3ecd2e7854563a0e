package corelib

import (
	"testing"

	"github.com/redthing1/wren-port/primitive"
	"github.com/redthing1/wren-port/value"
)

// fakeContext is a minimal value.PrimitiveContext standing in for a
// full corevm.VM, since corelib must not import corevm (the same
// import-cycle-avoidance shape DESIGN.md documents for the two
// packages). It allocates real value objects but keeps no object list
// or class table — every primitive this package tests only needs
// allocation and fiber access, not class lookup.
type fakeContext struct {
	fiber     *value.Fiber
	roots     value.RootClasses
	dollar    func(value.Value) (value.Value, bool)
	writeSink func(string)
	clock     float64
	gcCalled  bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{fiber: &value.Fiber{Error: value.Null}}
}

func (c *fakeContext) CurrentFiber() *value.Fiber      { return c.fiber }
func (c *fakeContext) SetCurrentFiber(f *value.Fiber)  { c.fiber = f }
func (c *fakeContext) Roots() *value.RootClasses       { return &c.roots }
func (c *fakeContext) LookupClass(string) (*value.Class, bool) { return nil, false }
func (c *fakeContext) NewString(text string) value.Value       { return value.NewString(text).Value() }
func (c *fakeContext) NewList() *value.ObjList                 { return value.NewList() }
func (c *fakeContext) NewMap() *value.ObjMap                   { return value.NewMap() }
func (c *fakeContext) NewRange(from, to float64, inclusive bool) *value.ObjRange {
	return value.NewRange(from, to, inclusive)
}
func (c *fakeContext) NewInstance(cls *value.Class) *value.ObjInstance { return value.NewInstance(cls) }
func (c *fakeContext) NewForeign(cls *value.Class, data interface{}) *value.ObjForeign {
	return value.NewForeign(cls, data)
}
func (c *fakeContext) WriteString(s string) {
	if c.writeSink != nil {
		c.writeSink(s)
	}
}
func (c *fakeContext) Clock() float64 { return c.clock }
func (c *fakeContext) GC()            { c.gcCalled = true }
func (c *fakeContext) Dollar(receiver value.Value) (value.Value, bool) {
	if c.dollar == nil {
		return value.Null, false
	}
	return c.dollar(receiver)
}

var _ value.PrimitiveContext = (*fakeContext)(nil)

// findFn locates the bound function for (className, sig) in table.
func findFn(t *testing.T, table primitive.Table, className, sig string) value.PrimitiveFn {
	t.Helper()
	for _, e := range table {
		if e.ClassName == className && e.Signature == sig {
			return e.Fn
		}
	}
	t.Fatalf("no entry bound for %s.%s", className, sig)
	return nil
}
