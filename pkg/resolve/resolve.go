// Package resolve turns a template's argument schema and the values supplied
// for it into a DataSet.
//
// An argument is selected when it was supplied XOR its kind is default
// triggered (a negated flag or a default-run command). Selected flags enter
// the context as true, selected scalar and multi-value arguments enter it
// with all their variants, selected commands are queued for execution.
package resolve

import (
	"sort"

	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/schema"
	"github.com/beltram/zr/pkg/variants"
)

// Resolve computes the DataSet of s given the supplied raw values. The
// project name is read from raw under schema.ProjectNameArg and its
// variants are merged last.
func Resolve(s *schema.Schema, raw RawValues) *DataSet {
	log := logging.GetLogger("resolve")

	ds := &DataSet{context: make(map[string]interface{})}

	for _, def := range s.Definitions() {
		kind := def.KindOrDefault()
		present := isPresent(def.Name, kind, raw)
		selected := present != schema.IsDefaultTriggered(kind)

		log.Trace().
			Str("argument", def.Name).
			Str("kind", kind.Name()).
			Bool("present", present).
			Bool("selected", selected).
			Msg("Resolving argument")

		if !selected {
			continue
		}

		switch k := kind.(type) {
		case schema.Flag:
			ds.context[def.Name] = true
		case schema.Command:
			ds.commands = append(ds.commands, Command{
				Order:       k.Order,
				CommandLine: k.CommandLine,
				DefaultRun:  k.DefaultRun,
			})
		case schema.Scalar:
			value, _ := raw.Value(def.Name)
			if !raw.IsPresent(def.Name) && k.Default != nil {
				value = *k.Default
			}
			ds.merge(variants.Expand(def.Name, value))
		case schema.MultiValue:
			values, _ := raw.Values(def.Name)
			if !raw.IsPresent(def.Name) {
				values = k.Default
			}
			ds.merge(variants.Expand(def.Name, append([]string{}, values...)))
		}
	}

	if name, ok := raw.Value(schema.ProjectNameArg); ok && name != "" {
		ds.merge(variants.Expand(ProjectKey, name))
	}

	sort.SliceStable(ds.commands, func(i, j int) bool {
		a, b := ds.commands[i], ds.commands[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.CommandLine < b.CommandLine
	})

	log.Debug().
		Int("keys", len(ds.context)).
		Strs("commands", ds.Commands()).
		Msg("Arguments resolved")
	return ds
}

// isPresent reports whether name counts as given. Scalar and multi-value
// arguments with a default always do, the default standing in for the
// missing value.
func isPresent(name string, kind schema.Kind, raw RawValues) bool {
	if raw.IsPresent(name) {
		return true
	}
	switch k := kind.(type) {
	case schema.Scalar:
		return k.Default != nil
	case schema.MultiValue:
		return k.Default != nil
	default:
		return false
	}
}

func (d *DataSet) merge(vs []variants.Variant) {
	for _, v := range vs {
		d.context[v.Key] = v.Value
	}
}
