// Package value implements the core runtime's data model: the uniform
// tagged Value, the heap object header every allocated kind shares, and
// the object kinds themselves (String, List, Map, Range, Module, Fn,
// Closure, Upvalue, Class, Instance, Fiber, Foreign).
//
// Class and Fiber live here too, alongside the simpler kinds, because
// they are mutually recursive with Value and with each other (a class's
// metaclass is itself a Class; a fiber's caller is another Fiber) in the
// same way the source runtime keeps them in one translation unit.
package value

// ObjKind tags which concrete payload an Obj header is attached to.
type ObjKind byte

const (
	ObjString ObjKind = iota
	ObjListKind
	ObjMapKind
	ObjRangeKind
	ObjModuleKind
	ObjFunctionKind
	ObjClosureKind
	ObjUpvalueKind
	ObjClassKind
	ObjInstanceKind
	ObjFiberKind
	ObjForeignKind
)

func (k ObjKind) String() string {
	switch k {
	case ObjString:
		return "String"
	case ObjListKind:
		return "List"
	case ObjMapKind:
		return "Map"
	case ObjRangeKind:
		return "Range"
	case ObjModuleKind:
		return "Module"
	case ObjFunctionKind:
		return "Function"
	case ObjClosureKind:
		return "Closure"
	case ObjUpvalueKind:
		return "Upvalue"
	case ObjClassKind:
		return "Class"
	case ObjInstanceKind:
		return "Instance"
	case ObjFiberKind:
		return "Fiber"
	case ObjForeignKind:
		return "Foreign"
	default:
		return "Unknown"
	}
}

// Obj is the heap object header embedded as the first field of every
// heap payload. The mutator (running fiber) and the collector both read
// and write it, per spec.md §3: type tag, class pointer, a next-link
// forming the VM's singly-linked list of all live objects, and a mark
// bit for sweep.
type Obj struct {
	Kind ObjKind
	// Class is nil only for String objects allocated before the String
	// class exists; Bootstrap's final pass repairs these (spec.md §4.5
	// step 7 and §3's "lifecycle/ownership" invariant).
	Class *Class
	// Payload is the concrete kind struct this header belongs to
	// (*ObjString, *ObjList, ...). Go has no safe "container_of", so the
	// header points forward to its payload instead of the payload
	// embedding the header and callers recovering it by pointer arithmetic.
	Payload interface{}
	gcNext  *Obj
	marked  bool
}

// Header returns o itself; it exists so every payload type can embed Obj
// and still satisfy a common "HeapObject" access pattern via promotion
// without a name collision on the field itself.
func (o *Obj) Header() *Obj { return o }

// ObjectList is the VM-owned singly-linked list of every live heap
// object, used by the (external) sweep phase. The core only maintains
// the links; it never walks them for collection itself.
type ObjectList struct {
	head  *Obj
	count int
}

// Push links o at the head of the list. Called by the VM's allocation
// routines before the new object is returned to the caller, matching
// spec.md §3's "Objects are created via allocator routines that link
// them into the object list before returning."
func (l *ObjectList) Push(o *Obj) {
	o.gcNext = l.head
	l.head = o
	l.count++
}

// Head returns the first object in the list, or nil if empty.
func (l *ObjectList) Head() *Obj { return l.head }

// Count returns the number of objects ever pushed minus those Sweep
// has removed.
func (l *ObjectList) Count() int { return l.count }

// Each walks the full object list front to back. An external mark/sweep
// collector is expected to use this (or an equivalent walk over gcNext)
// to find the object set, then call Sweep to unlink what it did not mark.
func (l *ObjectList) Each(fn func(*Obj)) {
	for o := l.head; o != nil; o = o.gcNext {
		fn(o)
	}
}

// Unmark clears every object's mark bit; a real collector calls this at
// the start of a mark phase.
func (l *ObjectList) Unmark() {
	l.Each(func(o *Obj) { o.marked = false })
}

// Mark sets o's mark bit; a real collector's tracer calls this while
// walking the root set.
func (o *Obj) Mark() { o.marked = true }

// Marked reports whether Mark has been called since the last Unmark.
func (o *Obj) Marked() bool { return o.marked }

// Sweep removes every unmarked object from the list and returns how many
// were freed. The core does not decide what "freeing" a payload means
// beyond unlinking it — the garbage collector's mark/sweep implementation
// proper is an external collaborator (spec.md §1); this is the minimal
// bookkeeping the list itself owns so a real collector has something to
// call after its trace completes.
func (l *ObjectList) Sweep() int {
	freed := 0
	var prev *Obj
	cur := l.head
	for cur != nil {
		next := cur.gcNext
		if !cur.marked {
			if prev == nil {
				l.head = next
			} else {
				prev.gcNext = next
			}
			l.count--
			freed++
		} else {
			prev = cur
		}
		cur = next
	}
	return freed
}
