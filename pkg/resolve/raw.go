package resolve

// RawValues exposes what was supplied on input for a template's arguments,
// typically by the command line.
type RawValues interface {
	// IsPresent reports whether name was explicitly given, including the
	// negation form of negated flags and suppression of default commands
	IsPresent(name string) bool
	// Value returns the single value given for name
	Value(name string) (string, bool)
	// Values returns the ordered values given for a multi-value argument
	Values(name string) ([]string, bool)
}

// MapValues is a RawValues backed by a map: a key is present when it is in
// the map, flags and commands map to no values.
type MapValues map[string][]string

// IsPresent implements RawValues
func (m MapValues) IsPresent(name string) bool {
	_, ok := m[name]
	return ok
}

// Value implements RawValues, returning the first value of name
func (m MapValues) Value(name string) (string, bool) {
	values, ok := m[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Values implements RawValues
func (m MapValues) Values(name string) ([]string, bool) {
	values, ok := m[name]
	if !ok {
		return nil, false
	}
	return values, true
}
