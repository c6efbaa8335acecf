package schema

import (
	"sort"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/beltram/zr/pkg/errors"
)

// Format is the encoding of a schema file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type fileDefinition struct {
	About string    `toml:"about" yaml:"about"`
	Short string    `toml:"short" yaml:"short"`
	Long  string    `toml:"long" yaml:"long"`
	Kind  *fileKind `toml:"kind" yaml:"kind"`
}

type fileKind struct {
	Flag    *fileFlag    `toml:"FLAG" yaml:"FLAG"`
	Scalar  *fileScalar  `toml:"ARG" yaml:"ARG"`
	Multi   *fileMulti   `toml:"MULTI" yaml:"MULTI"`
	Command *fileCommand `toml:"CMD" yaml:"CMD"`
}

type fileFlag struct {
	Negate bool `toml:"negate" yaml:"negate"`
}

type fileScalar struct {
	Default        *string  `toml:"default" yaml:"default"`
	PossibleValues []string `toml:"possible-values" yaml:"possible-values"`
}

type fileMulti struct {
	Default        []string `toml:"default" yaml:"default"`
	PossibleValues []string `toml:"possible-values" yaml:"possible-values"`
}

type fileCommand struct {
	Order   uint8   `toml:"order" yaml:"order"`
	Default bool    `toml:"default" yaml:"default"`
	Cmd     *string `toml:"cmd" yaml:"cmd"`
}

// Parse decodes a schema file. Definitions are ordered by name; unknown
// fields are ignored.
func Parse(data []byte, format Format) (*Schema, error) {
	raw := map[string]fileDefinition{}

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported schema format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSchemaInvalid, "failed to decode %s schema", format)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		def, err := raw[name].toDefinition(name)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return New(defs...), nil
}

func (f fileDefinition) toDefinition(name string) (Definition, error) {
	if name == "" {
		return Definition{}, errors.New(errors.ErrSchemaInvalid, "argument name must not be empty")
	}
	if f.Short != "" && utf8.RuneCountInString(f.Short) != 1 {
		return Definition{}, errors.Newf(errors.ErrSchemaInvalid, "short alias of %q must be a single character, got %q", name, f.Short).
			WithDetail("argument", name)
	}

	kind, err := f.Kind.toKind(name)
	if err != nil {
		return Definition{}, err
	}
	return Definition{
		Name:  name,
		About: f.About,
		Short: f.Short,
		Long:  f.Long,
		Kind:  kind,
	}, nil
}

func (k *fileKind) toKind(name string) (Kind, error) {
	if k == nil {
		return Scalar{}, nil
	}

	var kinds []Kind
	if k.Flag != nil {
		kinds = append(kinds, Flag{Negate: k.Flag.Negate})
	}
	if k.Scalar != nil {
		kinds = append(kinds, Scalar{Default: k.Scalar.Default, Allowed: k.Scalar.PossibleValues})
	}
	if k.Multi != nil {
		kinds = append(kinds, MultiValue{Default: k.Multi.Default, Allowed: k.Multi.PossibleValues})
	}
	if k.Command != nil {
		if k.Command.Cmd == nil {
			return nil, errors.Newf(errors.ErrSchemaInvalid, "command %q has no cmd", name).
				WithDetail("argument", name)
		}
		kinds = append(kinds, Command{
			Order:       k.Command.Order,
			DefaultRun:  k.Command.Default,
			CommandLine: *k.Command.Cmd,
		})
	}

	switch len(kinds) {
	case 0:
		return Scalar{}, nil
	case 1:
		return kinds[0], nil
	default:
		return nil, errors.Newf(errors.ErrSchemaInvalid, "argument %q declares more than one kind", name).
			WithDetail("argument", name)
	}
}
