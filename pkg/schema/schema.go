package schema

// Definition is one named argument of a template
type Definition struct {
	Name  string
	About string
	// Short is a single character alias, empty when none
	Short string
	// Long is the long flag name, empty means Name
	Long string
	Kind Kind
}

// LongName returns the long flag name of d
func (d Definition) LongName() string {
	if d.Long != "" {
		return d.Long
	}
	return d.Name
}

// KindOrDefault returns d's kind, a plain Scalar when unset
func (d Definition) KindOrDefault() Kind {
	if d.Kind == nil {
		return Scalar{}
	}
	return d.Kind
}

// Schema is an ordered set of definitions, unique by name.
// A nil *Schema is an empty schema.
type Schema struct {
	defs  []Definition
	index map[string]int
}

// New builds a schema from defs. A definition whose name was already seen
// replaces the earlier one in place.
func New(defs ...Definition) *Schema {
	s := &Schema{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		s.put(d)
	}
	return s
}

func (s *Schema) put(d Definition) {
	if d.Kind == nil {
		d.Kind = Scalar{}
	}
	if i, ok := s.index[d.Name]; ok {
		s.defs[i] = d
		return
	}
	s.index[d.Name] = len(s.defs)
	s.defs = append(s.defs, d)
}

// Definitions returns a copy of the definitions in order
func (s *Schema) Definitions() []Definition {
	if s == nil {
		return nil
	}
	return append([]Definition(nil), s.defs...)
}

// Get returns the definition named name
func (s *Schema) Get(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Definition{}, false
	}
	return s.defs[i], true
}

// Names returns the definition names in order
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.defs))
	for i, d := range s.defs {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of definitions
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.defs)
}

// Merge returns a new schema holding the ancestor's definitions overridden
// by the local ones with the same name, followed by the local-only ones.
// Neither input is modified.
func Merge(ancestor, local *Schema) *Schema {
	merged := New(ancestor.Definitions()...)
	for _, d := range local.Definitions() {
		merged.put(d)
	}
	return merged
}
