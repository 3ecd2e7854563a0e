package value

import "unicode/utf8"

// ObjString is an immutable byte sequence, interpreted as UTF-8 where a
// code-point operation demands it (spec.md §3). Length and hash are
// precomputed at construction.
type ObjString struct {
	Obj
	Text   string
	hash   uint64
	length int // byte length, cached for ByteCount_
}

// NewString constructs a detached ObjString not yet linked into any
// VM's object list or class-assigned; corevm.VM.NewString does the
// linking and class assignment (or leaves Class nil before Bootstrap
// completes, per spec.md §3).
func NewString(text string) *ObjString {
	s := &ObjString{Text: text, hash: fnv1a(text), length: len(text)}
	s.Obj.Kind = ObjString
	s.Obj.Payload = s
	return s
}

// Value wraps s as a Value.
func (s *ObjString) Value() Value { return NewObj(&s.Obj) }

// Hash returns the precomputed FNV-1a hash, used by Map's collaborator
// hash table.
func (s *ObjString) Hash() uint64 { return s.hash }

// ByteCount returns the length in bytes.
func (s *ObjString) ByteCount() int { return s.length }

// ByteAt returns the byte at index i, and whether i was in range.
func (s *ObjString) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= s.length {
		return 0, false
	}
	return s.Text[i], true
}

// CodePointAt decodes the UTF-8 code point starting at byte index i. If
// i lands inside a continuation byte, it returns -1 per spec.md §3.
func (s *ObjString) CodePointAt(i int) int {
	if i < 0 || i >= s.length {
		return -1
	}
	b := s.Text[i]
	if utf8.RuneStart(b) {
		r, _ := utf8.DecodeRuneInString(s.Text[i:])
		if r == utf8.RuneError {
			return -1
		}
		return int(r)
	}
	return -1
}

// CodePointCount returns the number of UTF-8 code points (the `count`
// primitive in spec.md §8's scenario 6).
func (s *ObjString) CodePointCount() int {
	return utf8.RuneCountInString(s.Text)
}

// Iterate advances a code-point iterator byte-wise, skipping UTF-8
// continuation bytes, per spec.md §3's List/String shared iteration
// protocol: iterate(null) returns 0 (or false if empty); iterate(i)
// returns the next code-point start index or false.
func (s *ObjString) Iterate(cur int, hasCur bool) (int, bool) {
	if !hasCur {
		if s.length == 0 {
			return 0, false
		}
		return 0, true
	}
	if cur >= s.length {
		return 0, false
	}
	i := cur + 1
	for i < s.length && !utf8.RuneStart(s.Text[i]) {
		i++
	}
	if i >= s.length {
		return 0, false
	}
	return i, true
}

// CodePointStringAt returns the single-character substring starting at
// byte index i (used by the subscript operator and by
// String.fromCodePoint's round-trip law, spec.md §8).
func (s *ObjString) CodePointStringAt(i int) (string, bool) {
	cp := s.CodePointAt(i)
	if cp < 0 {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(s.Text[i:])
	return s.Text[i : i+size], true
}

func fnv1a(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
