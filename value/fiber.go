package value

import (
	"github.com/google/uuid"
)

// FiberState is one of ROOT, OTHER, TRY (spec.md §3).
type FiberState byte

const (
	FiberRoot FiberState = iota
	FiberOther
	FiberTry
)

func (s FiberState) String() string {
	switch s {
	case FiberRoot:
		return "root"
	case FiberTry:
		return "try"
	default:
		return "other"
	}
}

// Frame is one entry of a fiber's call-frame stack: spec.md §3 describes
// {closure, ip, stack base}; since bytecode execution is out of core
// scope (spec.md §1), the core only tracks the closure for diagnostics
// and the numFrames>0 invariant (spec.md §4.3) — ip/stack base belong to
// the (external) bytecode interpreter loop.
type Frame struct {
	Closure *ObjClosure
}

// Fiber owns a frame stack, a caller link, an error slot and a state,
// per spec.md §3. Because the core has no bytecode interpreter loop to
// drive frame execution, each Fiber is realized as one goroutine parked
// on a pair of handoff channels — see DESIGN.md's fiber grounding entry.
type Fiber struct {
	Obj
	ID     uuid.UUID
	Caller *Fiber
	State  FiberState
	Error  Value

	frames    []Frame
	closure   *ObjClosure
	started   bool
	everEntered bool
	done      bool

	resumeCh chan fiberMsg
	yieldCh  chan fiberMsg
}

type fiberMsg struct {
	value     Value
	isError   bool
	suspended bool // true: a mid-run yield; false: the fiber finished (returned or aborted)
}

// abortSignal unwinds a fiber's native call stack up to its run loop,
// simulating what a bytecode interpreter's frame-unwind would do on an
// uncaught primitive error (spec.md §7). Primitives and native bodies
// call Fiber.Abort to raise one; nothing outside this file should panic
// with it directly.
type abortSignal struct{ value Value }

// NewFiber constructs a detached, not-yet-started Fiber wrapping fn.
// fn's arity must be 0 or 1 (spec.md §4.3); corelib's Fiber.new
// primitive validates that before calling this.
func NewFiber(fn *ObjClosure) *Fiber {
	f := &Fiber{
		ID:      uuid.New(),
		closure: fn,
		Error:   Null,
		State:   FiberOther,
		// resumeCh is unbuffered: a send only happens when the receiving
		// goroutine is immediately about to read it. yieldCh is buffered
		// by one: a fiber entered via transfer() runs to completion with
		// nobody blocked reading its yieldCh, and the final send at the
		// end of start()'s goroutine must not deadlock in that case.
		resumeCh: make(chan fiberMsg),
		yieldCh:  make(chan fiberMsg, 1),
	}
	f.Obj.Kind = ObjFiberKind
	f.Obj.Payload = f
	return f
}

// NewRootFiber constructs the VM's single root fiber wrapping fn. Only
// corevm (Bootstrap and Run) calls this — every other fiber is OTHER
// until try() marks it TRY (spec.md §3's ROOT/OTHER/TRY state set).
func NewRootFiber(fn *ObjClosure) *Fiber {
	f := NewFiber(fn)
	f.State = FiberRoot
	return f
}

// Value wraps f as a Value.
func (f *Fiber) Value() Value { return NewObj(&f.Obj) }

// IsDone reports whether the fiber has finished running (returned or
// aborted) — spec.md §4.3's `isDone` accessor.
func (f *Fiber) IsDone() bool { return f.done }

// IsAborted reports whether the fiber carries a non-null error, per
// spec.md §3's "an errored fiber... is considered aborted" invariant.
func (f *Fiber) IsAborted() bool { return !f.Error.IsNull() }

// NumFrames reports the current frame-stack depth, used by the
// "numFrames > 0 after a successful switch" invariant (spec.md §4.3).
func (f *Fiber) NumFrames() int { return len(f.frames) }

func (f *Fiber) pushFrame(c *ObjClosure) { f.frames = append(f.frames, Frame{Closure: c}) }
func (f *Fiber) popFrame() {
	if len(f.frames) > 0 {
		f.frames = f.frames[:len(f.frames)-1]
	}
}

// start launches the fiber's goroutine. It must be called at most once,
// before the first value is sent on resumeCh.
func (f *Fiber) start(ctx PrimitiveContext, arg Value) {
	f.started = true
	f.pushFrame(f.closure)
	go func() {
		var result fiberMsg
		func() {
			defer func() {
				if r := recover(); r != nil {
					sig, ok := r.(abortSignal)
					if !ok {
						panic(r) // not ours — a real Go bug, let it surface
					}
					f.Error = sig.value
					result = fiberMsg{value: sig.value, isError: true}
					return
				}
			}()
			first := <-f.resumeCh
			v := f.closure.Native(ctx, f, []Value{f.closure.Value(), first.value})
			result = fiberMsg{value: v, isError: false}
		}()
		f.popFrame()
		f.done = true
		f.yieldCh <- result
	}()
}

// Call begins or resumes f with the current fiber as its caller
// (spec.md §4.3). Preconditions (not aborted, not already called, not
// root, not finished) are validated by corelib's Fiber.call primitive;
// Call itself assumes they hold. The bool result reports whether f
// aborted (the Value is then the error, not a normal return/yield value).
func (f *Fiber) Call(ctx PrimitiveContext, caller *Fiber, arg Value) (Value, bool) {
	f.Caller = caller
	return f.enter(ctx, arg)
}

// Try is like Call but marks f TRY on successful entry, so an abort
// inside f is caught and delivered to the caller as a value instead of
// propagating (spec.md §4.3). The bool result is therefore always false;
// f.IsAborted() reports afterwards whether f aborted.
func (f *Fiber) Try(ctx PrimitiveContext, caller *Fiber, arg Value) (Value, bool) {
	f.Caller = caller
	f.State = FiberTry
	v, _ := f.enter(ctx, arg)
	return v, false
}

// enter sends arg to f (starting its goroutine on first entry) and
// blocks until f yields, returns, or aborts.
func (f *Fiber) enter(ctx PrimitiveContext, arg Value) (Value, bool) {
	f.everEntered = true
	if !f.started {
		f.start(ctx, arg)
	}
	f.resumeCh <- fiberMsg{value: arg}
	msg := <-f.yieldCh
	return msg.value, msg.isError
}

// Transfer switches to f without recording a caller; the caller's own
// yielding chain is abandoned (spec.md §4.3). It must be called from
// inside the currently-running fiber's native body, which blocks here
// (parked on its own resumeCh) until something later resumes it with
// another call/transfer.
func Transfer(ctx PrimitiveContext, self, target *Fiber, arg Value) Value {
	self.Caller = nil
	target.Caller = nil
	if !target.started {
		target.start(ctx, arg)
	}
	target.resumeCh <- fiberMsg{value: arg}
	resumed := <-self.resumeCh
	return resumed.value
}

// TransferError transfers to target, then sets target's error so it
// unwinds on resume (spec.md §4.3).
func TransferError(ctx PrimitiveContext, self, target *Fiber, errVal Value) Value {
	target.Error = errVal
	return Transfer(ctx, self, target, errVal)
}

// Yield switches to self's caller, clears the caller link and sets
// state OTHER (spec.md §4.3). If self has no caller, the VM becomes
// idle — modeled here as blocking forever on resumeCh, which is
// correct for a single-threaded cooperative scheduler: nothing else
// can make progress until some other goroutine (a future host call)
// resumes this fiber.
func (self *Fiber) Yield(v Value) Value {
	caller := self.Caller
	self.Caller = nil
	self.State = FiberOther
	if caller != nil {
		// self.yieldCh, not caller.yieldCh: the blocked party is whoever
		// is parked in self.enter (called as target.enter where target
		// is this very fiber), listening on this fiber's own channel.
		self.yieldCh <- fiberMsg{value: v, suspended: true}
	}
	resumed := <-self.resumeCh
	return resumed.value
}

// Suspend parks self with no caller notified at all; the VM goes idle
// until some external call/transfer resumes this fiber directly
// (spec.md §4.3's suspend() — "relinquishes control until externally
// resumed").
func (self *Fiber) Suspend() Value {
	errAtSuspend := self.Error
	self.Caller = nil
	self.State = FiberOther
	<-self.resumeCh
	return errAtSuspend
}

// Abort stores v in self's error slot and unwinds self's native call
// stack up to its run loop, simulating the bytecode interpreter's
// frame-unwind-on-error behavior (spec.md §7). A null v is not an
// abort — spec.md §4.3 — so callers should check v.IsNull() before
// calling Abort and instead treat it as a no-op.
func (self *Fiber) Abort(v Value) {
	self.Error = v
	panic(abortSignal{value: v})
}
