package value

import "testing"

func TestMapSetGetDeleteContainsKey(t *testing.T) {
	m := NewMap()
	key := NewString("a").Value()
	m.Set(key, NewNum(1))

	if !m.ContainsKey(NewString("a").Value()) {
		t.Error("ContainsKey must match a byte-identical but distinct string key")
	}
	got, ok := m.Get(NewString("a").Value())
	if !ok {
		t.Fatal("Get reported missing for a key just set")
	}
	if n, _ := got.AsNum(); n != 1 {
		t.Errorf("Get(a) = %v, want 1", n)
	}

	if m.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", m.Count())
	}

	if !m.Delete(NewString("a").Value()) {
		t.Error("Delete must report true for a present key")
	}
	if m.ContainsKey(key) {
		t.Error("key must be gone after Delete")
	}
	if m.Delete(key) {
		t.Error("deleting an absent key must report false")
	}
}

func TestMapNumAndBoolKeys(t *testing.T) {
	m := NewMap()
	m.Set(NewNum(1), NewString("one").Value())
	m.Set(True, NewString("yes").Value())

	v, ok := m.Get(NewNum(1))
	if !ok || v.AsString().Text != "one" {
		t.Errorf("Get(1) = %+v, %v; want \"one\", true", v, ok)
	}
	v, ok = m.Get(True)
	if !ok || v.AsString().Text != "yes" {
		t.Errorf("Get(true) = %+v, %v; want \"yes\", true", v, ok)
	}
}
