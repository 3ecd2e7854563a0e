package value

// ObjList is an ordered, resizable sequence of Value (spec.md §3).
type ObjList struct {
	Obj
	Elements []Value
}

// NewList constructs a detached, empty ObjList.
func NewList() *ObjList {
	l := &ObjList{}
	l.Obj.Kind = ObjListKind
	l.Obj.Payload = l
	return l
}

// NewFilledList constructs a detached ObjList of length n, every slot
// set to fill. Negative n is a caller error; corelib's List.filled
// primitive validates n >= 0 before calling this (spec.md §4.4, §8).
func NewFilledList(n int, fill Value) *ObjList {
	l := NewList()
	l.Elements = make([]Value, n)
	for i := range l.Elements {
		l.Elements[i] = fill
	}
	return l
}

// Value wraps l as a Value.
func (l *ObjList) Value() Value { return NewObj(&l.Obj) }

// Count returns the number of elements.
func (l *ObjList) Count() int { return len(l.Elements) }

// Insert inserts v at index i (0 <= i <= len).
func (l *ObjList) Insert(i int, v Value) {
	l.Elements = append(l.Elements, Null)
	copy(l.Elements[i+1:], l.Elements[i:])
	l.Elements[i] = v
}

// RemoveAt removes and returns the element at index i.
func (l *ObjList) RemoveAt(i int) Value {
	v := l.Elements[i]
	copy(l.Elements[i:], l.Elements[i+1:])
	l.Elements = l.Elements[:len(l.Elements)-1]
	return v
}

// Swap exchanges the elements at i and j.
func (l *ObjList) Swap(i, j int) {
	l.Elements[i], l.Elements[j] = l.Elements[j], l.Elements[i]
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *ObjList) IndexOf(v Value) int {
	for i, e := range l.Elements {
		if Equal(e, v) {
			return i
		}
	}
	return -1
}

// Iterate implements List's documented iteration protocol. spec.md §9
// flags the source's `index >= count - 1` guard as an off-by-one bug
// that stops one element early; this port deliberately diverges and
// iterates through index >= count, per spec.md's explicit instruction
// (also see DESIGN.md's Open Question decision).
func (l *ObjList) Iterate(cur int, hasCur bool) (int, bool) {
	if !hasCur {
		if len(l.Elements) == 0 {
			return 0, false
		}
		return 0, true
	}
	next := cur + 1
	if next >= len(l.Elements) {
		return 0, false
	}
	return next, true
}
