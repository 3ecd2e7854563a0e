package value

// ObjModule is a named variable table plus a list of variable names and
// values (spec.md §3). The module loader proper is an external
// collaborator (spec.md §1); the core only needs the table shape to hold
// the `core` module and any host-declared ones.
type ObjModule struct {
	Obj
	Name  string
	names []string
	vars  map[string]Value
}

// NewModule constructs a detached ObjModule. name may be "" for the
// anonymous core module, matching spec.md §4.5 step 1's "registered
// under the null key".
func NewModule(name string) *ObjModule {
	m := &ObjModule{Name: name, vars: make(map[string]Value)}
	m.Obj.Kind = ObjModuleKind
	m.Obj.Payload = m
	return m
}

// Value wraps m as a Value.
func (m *ObjModule) Value() Value { return NewObj(&m.Obj) }

// Define creates or overwrites a module variable.
func (m *ObjModule) Define(name string, v Value) {
	if _, exists := m.vars[name]; !exists {
		m.names = append(m.names, name)
	}
	m.vars[name] = v
}

// Lookup returns a module variable and whether it exists.
func (m *ObjModule) Lookup(name string) (Value, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Names returns the variable names in declaration order.
func (m *ObjModule) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}
