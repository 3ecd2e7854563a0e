package value

// ObjMap is a hash map from Value to Value. spec.md §1 treats the actual
// hash table implementation as an external collaborator ("the map/hash
// table implementation"); this is the minimal stand-in the core needs so
// Map exists as an object kind and Range/List primitives that return
// maps (none do, today) would have somewhere to live. It is backed by a
// plain Go map keyed on a comparable projection of Value, not a custom
// open-addressing table.
type ObjMap struct {
	Obj
	entries map[interface{}]mapEntry
}

type mapEntry struct {
	key   Value
	value Value
}

// NewMap constructs a detached, empty ObjMap.
func NewMap() *ObjMap {
	m := &ObjMap{entries: make(map[interface{}]mapEntry)}
	m.Obj.Kind = ObjMapKind
	m.Obj.Payload = m
	return m
}

// Value wraps m as a Value.
func (m *ObjMap) Value() Value { return NewObj(&m.Obj) }

// Count returns the number of entries.
func (m *ObjMap) Count() int { return len(m.entries) }

func mapKey(v Value) interface{} {
	switch {
	case v.IsNull(), v.IsUndefined():
		return nil
	case v.IsBool():
		b, _ := v.AsBool()
		return b
	case v.IsNum():
		n, _ := v.AsNum()
		return n
	case v.IsString():
		return v.AsString().Text
	default:
		return v.Obj()
	}
}

// Get looks up key.
func (m *ObjMap) Get(key Value) (Value, bool) {
	e, ok := m.entries[mapKey(key)]
	if !ok {
		return Null, false
	}
	return e.value, true
}

// Set stores key -> val.
func (m *ObjMap) Set(key, val Value) {
	m.entries[mapKey(key)] = mapEntry{key: key, value: val}
}

// Delete removes key, reporting whether it was present.
func (m *ObjMap) Delete(key Value) bool {
	k := mapKey(key)
	if _, ok := m.entries[k]; !ok {
		return false
	}
	delete(m.entries, k)
	return true
}

// ContainsKey reports whether key is present.
func (m *ObjMap) ContainsKey(key Value) bool {
	_, ok := m.entries[mapKey(key)]
	return ok
}

// Each calls fn for every entry, in unspecified order (Go map order).
func (m *ObjMap) Each(fn func(key, val Value)) {
	for _, e := range m.entries {
		fn(e.key, e.value)
	}
}
