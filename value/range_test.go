package value

import "testing"

func iterateRange(r *ObjRange) []float64 {
	var out []float64
	cur, hasCur := 0.0, false
	next, more := r.Iterate(cur, hasCur)
	for more {
		out = append(out, next)
		next, more = r.Iterate(next, true)
	}
	return out
}

func TestRangeIterationInclusiveSingleton(t *testing.T) {
	r := NewRange(1, 1, true)
	got := iterateRange(r)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("(1..1) yielded %v, want [1]", got)
	}
}

func TestRangeIterationExclusiveEmpty(t *testing.T) {
	r := NewRange(1, 1, false)
	got := iterateRange(r)
	if len(got) != 0 {
		t.Fatalf("(1...1) yielded %v, want []", got)
	}
}

func TestRangeIterationDescending(t *testing.T) {
	r := NewRange(3, 1, true)
	got := iterateRange(r)
	want := []float64{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("(3..1) yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("(3..1)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRangeMinMax(t *testing.T) {
	r := NewRange(5, 1, true)
	if r.Min() != 1 || r.Max() != 5 {
		t.Errorf("Min/Max = %v/%v, want 1/5", r.Min(), r.Max())
	}
}

func TestRangeToString(t *testing.T) {
	if got := NewRange(1, 5, true).String(); got != "1..5" {
		t.Errorf("inclusive range toString = %q, want %q", got, "1..5")
	}
	if got := NewRange(1, 5, false).String(); got != "1...5" {
		t.Errorf("exclusive range toString = %q, want %q", got, "1...5")
	}
}
