package value

import "fmt"

// ObjRange is an immutable (from, to, isInclusive) tuple (spec.md §3).
type ObjRange struct {
	Obj
	From        float64
	To          float64
	IsInclusive bool
}

// NewRange constructs a detached ObjRange.
func NewRange(from, to float64, inclusive bool) *ObjRange {
	r := &ObjRange{From: from, To: to, IsInclusive: inclusive}
	r.Obj.Kind = ObjRangeKind
	r.Obj.Payload = r
	return r
}

// Value wraps r as a Value.
func (r *ObjRange) Value() Value { return NewObj(&r.Obj) }

// Min and Max report the range's numeric bounds regardless of direction.
func (r *ObjRange) Min() float64 {
	if r.From < r.To {
		return r.From
	}
	return r.To
}

func (r *ObjRange) Max() float64 {
	if r.From > r.To {
		return r.From
	}
	return r.To
}

// Iterate ascends or descends in unit steps based on the sign of
// to-from, stopping before `to` if exclusive and at `to` if inclusive;
// an empty exclusive range terminates immediately (spec.md §3, §8).
func (r *ObjRange) Iterate(cur float64, hasCur bool) (float64, bool) {
	if r.From == r.To && !r.IsInclusive {
		return 0, false
	}
	ascending := r.From <= r.To
	var next float64
	if !hasCur {
		next = r.From
	} else if ascending {
		next = cur + 1
	} else {
		next = cur - 1
	}
	if ascending {
		if r.IsInclusive && next > r.To {
			return 0, false
		}
		if !r.IsInclusive && next >= r.To {
			return 0, false
		}
	} else {
		if r.IsInclusive && next < r.To {
			return 0, false
		}
		if !r.IsInclusive && next <= r.To {
			return 0, false
		}
	}
	return next, true
}

// String formats as "<from><..or...><to>" per spec.md §4.4.
func (r *ObjRange) String() string {
	op := "..."
	if r.IsInclusive {
		op = ".."
	}
	return fmt.Sprintf("%s%s%s", formatNum(r.From), op, formatNum(r.To))
}

func formatNum(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}
