package resolve

import (
	"sort"

	"github.com/beltram/zr/pkg/schema"
	"github.com/beltram/zr/pkg/variants"
)

// ProjectKey is the context key holding the project name
const ProjectKey = "proj"

// DefaultProjectName is read in place of a missing project name
const DefaultProjectName = "sample"

// Command is a post-generation command selected during resolution
type Command struct {
	Order       uint8
	CommandLine string
	DefaultRun  bool
}

// MultiValue is an array-typed context entry
type MultiValue struct {
	Key    string
	Values []string
}

// DataSet is the outcome of resolving a template's arguments: the flat
// rendering context and the ordered post-generation commands. It is
// read-only once built.
type DataSet struct {
	context  map[string]interface{}
	commands []Command
}

// Get returns the context value of key
func (d *DataSet) Get(key string) (interface{}, bool) {
	v, ok := d.context[key]
	return v, ok
}

// Has reports whether key is in the context. For a flag it tells whether
// the flag was selected.
func (d *DataSet) Has(key string) bool {
	_, ok := d.context[key]
	return ok
}

// ProjectName returns the project name, DefaultProjectName when absent
func (d *DataSet) ProjectName() string {
	if v, ok := d.context[ProjectKey].(string); ok && v != "" {
		return v
	}
	return DefaultProjectName
}

// Context returns a copy of the rendering context. When no project name was
// resolved, the variants of DefaultProjectName are filled in.
func (d *DataSet) Context() map[string]interface{} {
	ctx := make(map[string]interface{}, len(d.context)+len(variants.Suffixes())+1)
	if !d.Has(ProjectKey) {
		for _, v := range variants.Expand(ProjectKey, DefaultProjectName) {
			ctx[v.Key] = v.Value
		}
	}
	for k, v := range d.context {
		ctx[k] = v
	}
	return ctx
}

// Keys returns the context keys, sorted
func (d *DataSet) Keys() []string {
	keys := make([]string, 0, len(d.context))
	for k := range d.context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MultiValues returns every array-typed context entry, sorted by key
func (d *DataSet) MultiValues() []MultiValue {
	var out []MultiValue
	for _, k := range d.Keys() {
		if values, ok := d.context[k].([]string); ok {
			out = append(out, MultiValue{Key: k, Values: values})
		}
	}
	return out
}

// Commands returns the selected command lines, by ascending order then
// command line
func (d *DataSet) Commands() []string {
	out := make([]string, len(d.commands))
	for i, c := range d.commands {
		out[i] = c.CommandLine
	}
	return out
}

// CommandEntries returns the selected commands in execution order
func (d *DataSet) CommandEntries() []Command {
	return append([]Command(nil), d.commands...)
}

// Readme reports whether README.md templates are rendered
func (d *DataSet) Readme() bool { return d.Has(schema.ArgReadme) }

// Force reports whether an existing project is erased without asking
func (d *DataSet) Force() bool { return d.Has(schema.ArgForce) }

// Dry reports whether the project is deleted before exiting
func (d *DataSet) Dry() bool { return d.Has(schema.ArgDry) }

// Idea reports whether the project is opened in IntelliJ
func (d *DataSet) Idea() bool { return d.Has(schema.ArgIdea) }

// Code reports whether the project is opened in Visual Studio Code
func (d *DataSet) Code() bool { return d.Has(schema.ArgCode) }
