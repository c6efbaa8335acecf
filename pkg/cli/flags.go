// Package cli binds template schemas to cobra commands: one flag per
// argument, allowed-value checks and a resolve.RawValues view over the
// parsed flags.
package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/resolve"
	"github.com/beltram/zr/pkg/schema"
)

// NegationPrefix prefixes the flag of arguments selected unless given
const NegationPrefix = "no-"

// AnnotationGroup is the flag annotation holding the help group of a flag
const AnnotationGroup = "zr_group"

// GroupCommands is the help group of command arguments
const GroupCommands = "COMMANDS"

// FlagName returns the long flag of d. Negated flags and default-run
// commands without an explicit long name are exposed as --no-<name>.
func FlagName(d schema.Definition) string {
	if d.Long != "" {
		return d.Long
	}
	if schema.IsDefaultTriggered(d.KindOrDefault()) {
		return NegationPrefix + d.Name
	}
	return d.Name
}

// Binding is the set of flags registered for a schema
type Binding struct {
	schema      *schema.Schema
	flags       *pflag.FlagSet
	longs       map[string]string
	projectName *string
}

// Bind registers one flag per definition of s on fs. Definitions whose
// flag or shorthand is already taken, in fs or in one of the reserved
// sets, are registered without the shorthand, or not at all, and logged.
func Bind(fs *pflag.FlagSet, s *schema.Schema, reserved ...*pflag.FlagSet) *Binding {
	logger := logging.GetLogger("cli")

	sets := append([]*pflag.FlagSet{fs}, reserved...)
	longTaken := func(long string) bool {
		for _, set := range sets {
			if set.Lookup(long) != nil {
				return true
			}
		}
		return false
	}
	shortTaken := func(short string) bool {
		for _, set := range sets {
			if set.ShorthandLookup(short) != nil {
				return true
			}
		}
		return false
	}

	b := &Binding{schema: s, flags: fs, longs: make(map[string]string)}
	for _, d := range s.Definitions() {
		long := FlagName(d)
		if longTaken(long) {
			logger.Warn().Str("argument", d.Name).Str("flag", long).Msg("Flag already defined, argument ignored")
			continue
		}
		short := d.Short
		if short != "" && shortTaken(short) {
			logger.Warn().Str("argument", d.Name).Str("short", short).Msg("Shorthand already defined, ignored")
			short = ""
		}

		switch k := d.KindOrDefault().(type) {
		case schema.Flag:
			fs.BoolP(long, short, false, d.About)
		case schema.Scalar:
			def := ""
			if k.Default != nil {
				def = *k.Default
			}
			fs.StringP(long, short, def, usage(d.About, k.Allowed))
		case schema.MultiValue:
			fs.StringSliceP(long, short, k.Default, usage(d.About, k.Allowed))
		case schema.Command:
			about := d.About
			if about == "" {
				about = k.CommandLine
			}
			fs.BoolP(long, short, false, about)
			_ = fs.SetAnnotation(long, AnnotationGroup, []string{GroupCommands})
		}
		b.longs[d.Name] = long
	}
	return b
}

func usage(about string, allowed []string) string {
	if len(allowed) == 0 {
		return about
	}
	return fmt.Sprintf("%s [possible values: %s]", about, strings.Join(allowed, ", "))
}

// SetProjectName records the positional project name
func (b *Binding) SetProjectName(name string) {
	b.projectName = &name
}

// SetArgs records the positional arguments of the command
func (b *Binding) SetArgs(args []string) {
	if len(args) > 0 {
		b.SetProjectName(args[0])
	}
}

// Validate checks the given values of arguments restricted to allowed
// values.
func (b *Binding) Validate() error {
	for _, d := range b.schema.Definitions() {
		if !b.IsPresent(d.Name) {
			continue
		}
		var given, allowed []string
		switch k := d.KindOrDefault().(type) {
		case schema.Scalar:
			v, _ := b.Value(d.Name)
			given, allowed = []string{v}, k.Allowed
		case schema.MultiValue:
			given, _ = b.Values(d.Name)
			allowed = k.Allowed
		}
		if len(allowed) == 0 {
			continue
		}
		for _, v := range given {
			if !slices.Contains(allowed, v) {
				return errors.Newf(errors.ErrInvalidValue, "invalid value %q for --%s [possible values: %s]",
					v, b.longs[d.Name], strings.Join(allowed, ", ")).
					WithDetail("argument", d.Name)
			}
		}
	}
	return nil
}

// IsPresent implements resolve.RawValues: the project name when set, a
// flag when it was given on the command line.
func (b *Binding) IsPresent(name string) bool {
	if name == schema.ProjectNameArg {
		return b.projectName != nil
	}
	long, ok := b.longs[name]
	if !ok {
		return false
	}
	return b.flags.Changed(long)
}

// Value implements resolve.RawValues
func (b *Binding) Value(name string) (string, bool) {
	if name == schema.ProjectNameArg {
		if b.projectName == nil {
			return "", false
		}
		return *b.projectName, true
	}
	if !b.IsPresent(name) {
		return "", false
	}
	v, err := b.flags.GetString(b.longs[name])
	if err != nil {
		return "", false
	}
	return v, true
}

// Values implements resolve.RawValues
func (b *Binding) Values(name string) ([]string, bool) {
	if !b.IsPresent(name) {
		return nil, false
	}
	v, err := b.flags.GetStringSlice(b.longs[name])
	if err != nil {
		return nil, false
	}
	return v, true
}

// RegisterCompletions completes the values of arguments restricted to
// allowed values.
func RegisterCompletions(cmd *cobra.Command, s *schema.Schema) {
	for _, d := range s.Definitions() {
		var allowed []string
		switch k := d.KindOrDefault().(type) {
		case schema.Scalar:
			allowed = k.Allowed
		case schema.MultiValue:
			allowed = k.Allowed
		}
		if len(allowed) == 0 || cmd.Flags().Lookup(FlagName(d)) == nil {
			continue
		}
		values := allowed
		_ = cmd.RegisterFlagCompletionFunc(FlagName(d), func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		})
	}
}

var _ resolve.RawValues = (*Binding)(nil)
