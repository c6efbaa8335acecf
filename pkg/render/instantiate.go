package render

import (
	"regexp"
	"strings"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/resolve"
	"github.com/beltram/zr/pkg/variants"
)

// Readme is the file name of templates only rendered with --readme
const Readme = "README.md"

// Artifact is one output file of a template
type Artifact struct {
	// Template is the registered template the artifact was instantiated from
	Template string
	// Name is the rendered path of the file, relative to the project root
	Name string
	// Content is the rendered file content
	Content []byte
	// Fanout is true when the artifact is one of the copies of a template
	// whose name references a multi-value argument
	Fanout bool
}

// IsReadme reports whether name denotes a README.md template
func IsReadme(name string) bool {
	return strings.HasSuffix(name, Readme)
}

// InstantiateAll instantiates every registered template in name order. An
// artifact name produced twice, such as a fanout copy overridden by an
// explicit template, is kept once.
func (e *Engine) InstantiateAll(ds *resolve.DataSet) []Artifact {
	seen := make(map[string]bool)
	var out []Artifact
	for _, name := range e.Names() {
		for _, a := range e.Instantiate(ds, name) {
			if seen[a.Name] {
				continue
			}
			seen[a.Name] = true
			out = append(out, a)
		}
	}
	return out
}

// Instantiate renders the template registered under name into zero, one or
// many artifacts.
//
// When the name references array-typed entries of ds, one artifact is
// produced per value, in value order, its name rendered with the value in
// place of the array. A name referencing several multi values fans out on
// every combination, the first multi value by key varying slowest.
// Otherwise a single artifact is produced. Content is always rendered with
// the full data set, arrays printing as ", " separated lists, from the
// template registered under the artifact's name when there is one, from
// name otherwise.
//
// Failures never abort: README.md templates are skipped unless ds selects
// readme, a missing template for a fanout copy is skipped silently and any
// other failure is logged and skips the artifact.
func (e *Engine) Instantiate(ds *resolve.DataSet, name string) []Artifact {
	log := logging.GetLogger("render")

	if IsReadme(name) && !ds.Readme() {
		log.Debug().Str("template", name).Msg("Skipping README template")
		return nil
	}

	ctx := templateContext(ds.Context())

	var out []Artifact
	for _, a := range e.artifactNames(ds, ctx, name) {
		source := name
		if a.Fanout && e.Has(a.Name) {
			source = a.Name
		}

		content, err := e.renderTemplate(source, ctx)
		if err != nil {
			if a.Fanout && errors.IsErrorCode(err, errors.ErrNotFound) {
				continue
			}
			log.Warn().Err(err).Str("template", name).Str("artifact", a.Name).Msg("Failed rendering file")
			continue
		}

		a.Content = []byte(content)
		out = append(out, a)
	}
	return out
}

// artifactNames computes the rendered output names of template name
func (e *Engine) artifactNames(ds *resolve.DataSet, ctx map[string]interface{}, name string) []Artifact {
	log := logging.GetLogger("render")

	var groups []fanoutGroup
	refs := References(name)
	for _, g := range fanoutGroups(ds.MultiValues()) {
		if g.referencedBy(refs) {
			groups = append(groups, g)
		}
	}

	seen := make(map[string]bool)
	var out []Artifact
	for _, combo := range combinations(groups) {
		nameCtx := ctx
		for i, g := range groups {
			nameCtx = g.overlay(nameCtx, combo[i])
		}
		rendered, err := renderString(name, nameCtx)
		if err != nil || rendered == "" {
			log.Debug().Err(err).Str("template", name).Ints("combination", combo).
				Msg("Could not render fanout name")
			continue
		}
		if seen[rendered] {
			continue
		}
		seen[rendered] = true
		out = append(out, Artifact{Template: name, Name: rendered, Fanout: true})
	}
	if len(out) > 0 {
		return out
	}

	rendered, err := renderString(name, ctx)
	if err != nil || rendered == "" {
		log.Warn().Err(err).Str("template", name).Msg("Failed rendering file name")
		return nil
	}
	return []Artifact{{Template: name, Name: rendered}}
}

// combinations returns every index tuple over groups, the last group
// varying fastest. No group, or an empty one, gives no combination.
func combinations(groups []fanoutGroup) [][]int {
	if len(groups) == 0 {
		return nil
	}
	combos := [][]int{{}}
	for _, g := range groups {
		next := make([][]int, 0, len(combos)*g.size)
		for _, c := range combos {
			for i := 0; i < g.size; i++ {
				next = append(next, append(append([]int(nil), c...), i))
			}
		}
		combos = next
	}
	return combos
}

// fanoutGroup is a multi-value argument together with its variants, which
// all hold one element per supplied value
type fanoutGroup struct {
	base   string
	size   int
	values map[string][]string
}

func (g fanoutGroup) referencedBy(refs map[string]bool) bool {
	for key := range g.values {
		if refs[key] {
			return true
		}
	}
	return false
}

// overlay returns a copy of ctx where every key of g holds its i-th element
func (g fanoutGroup) overlay(ctx map[string]interface{}, i int) map[string]interface{} {
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	for key, values := range g.values {
		out[key] = values[i]
	}
	return out
}

// fanoutGroups groups array entries by argument: "mod-kebab" joins "mod"
// when both are arrays of the same length.
func fanoutGroups(mvs []resolve.MultiValue) []fanoutGroup {
	byKey := make(map[string][]string, len(mvs))
	for _, mv := range mvs {
		byKey[mv.Key] = mv.Values
	}

	var groups []fanoutGroup
	index := make(map[string]int)
	for _, mv := range mvs {
		if _, ok := variantOf(mv.Key, byKey); ok {
			continue
		}
		index[mv.Key] = len(groups)
		groups = append(groups, fanoutGroup{
			base:   mv.Key,
			size:   len(mv.Values),
			values: map[string][]string{mv.Key: mv.Values},
		})
	}
	for _, mv := range mvs {
		if base, ok := variantOf(mv.Key, byKey); ok {
			groups[index[base]].values[mv.Key] = mv.Values
		}
	}
	return groups
}

// variantOf returns the base key of a variant key, provided the base is an
// array of the same length
func variantOf(key string, byKey map[string][]string) (string, bool) {
	for _, suffix := range variants.Suffixes() {
		base, found := strings.CutSuffix(key, "-"+suffix)
		if !found {
			continue
		}
		if values, ok := byKey[base]; ok && len(values) == len(byKey[key]) {
			return base, true
		}
	}
	return "", false
}

var mustache = regexp.MustCompile(`\{\{\{?~?\s*([^{}\s~]+)`)

// References returns the identifiers referenced by the mustaches of source,
// helper names and block markers included.
func References(source string) map[string]bool {
	refs := make(map[string]bool)
	for _, m := range mustache.FindAllStringSubmatch(source, -1) {
		id := strings.TrimLeft(m[1], "#/^&>!")
		if id != "" {
			refs[id] = true
		}
	}
	for _, m := range argument.FindAllStringSubmatch(source, -1) {
		refs[m[1]] = true
	}
	return refs
}

// argument matches identifiers passed to helpers, `{{kebab mod}}`
var argument = regexp.MustCompile(`\{\{\{?~?\s*[^{}\s~]+\s+([A-Za-z0-9_\-]+)`)
