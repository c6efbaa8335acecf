package schema

// Kind is the closed set of argument kinds: Flag, Scalar, MultiValue and
// Command. Switch over it with a type switch.
type Kind interface {
	// Name returns the kind's tag as written in schema files
	Name() string
	isKind()
}

// Flag is a boolean argument taking no value, e.g. --force.
// A negated flag is selected unless it is supplied.
type Flag struct {
	Negate bool
}

// Scalar is an argument taking one value, e.g. --gradle-version=7.0
type Scalar struct {
	Default *string
	Allowed []string
}

// MultiValue is an argument taking many values, e.g. --mod=api --mod=error
type MultiValue struct {
	Default []string
	Allowed []string
}

// Command is a shell command run after the project is generated.
// DefaultRun commands run unless suppressed, others only when requested.
type Command struct {
	Order       uint8
	DefaultRun  bool
	CommandLine string
}

// Kind tags as written in schema files
const (
	KindFlag    = "FLAG"
	KindScalar  = "ARG"
	KindMulti   = "MULTI"
	KindCommand = "CMD"
)

func (Flag) Name() string       { return KindFlag }
func (Scalar) Name() string     { return KindScalar }
func (MultiValue) Name() string { return KindMulti }
func (Command) Name() string    { return KindCommand }

func (Flag) isKind()       {}
func (Scalar) isKind()     {}
func (MultiValue) isKind() {}
func (Command) isKind()    {}

// IsDefaultTriggered reports whether an argument of kind k is selected when
// it is not supplied: default-run commands and negated flags.
func IsDefaultTriggered(k Kind) bool {
	switch kind := k.(type) {
	case Command:
		return kind.DefaultRun
	case Flag:
		return kind.Negate
	default:
		return false
	}
}
