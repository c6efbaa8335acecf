package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beltram/zr/pkg/resolve"
	"github.com/beltram/zr/pkg/schema"
)

func dataSet(defs []schema.Definition, raw resolve.MapValues) *resolve.DataSet {
	return resolve.Resolve(schema.WithStandard(schema.New(defs...)), raw)
}

func multi(name string) schema.Definition {
	return schema.Definition{Name: name, Kind: schema.MultiValue{}}
}

func engine(t *testing.T, templates map[string]string) *Engine {
	t.Helper()
	e := New()
	for name, source := range templates {
		require.NoError(t, e.Add(name, source))
	}
	return e
}

func names(artifacts []Artifact) []string {
	out := make([]string, len(artifacts))
	for i, a := range artifacts {
		out[i] = a.Name
	}
	return out
}

func TestInstantiatePlain(t *testing.T) {
	e := engine(t, map[string]string{
		"src/{{proj-path}}/Main.java": "package {{proj-dot}};",
	})
	ds := dataSet(nil, resolve.MapValues{schema.ProjectNameArg: {"com-acme-app"}})

	artifacts := e.Instantiate(ds, "src/{{proj-path}}/Main.java")

	require.Len(t, artifacts, 1)
	assert.Equal(t, "src/com/acme/app/Main.java", artifacts[0].Name)
	assert.Equal(t, "package com.acme.app;", string(artifacts[0].Content))
	assert.False(t, artifacts[0].Fanout)
	assert.Equal(t, "src/{{proj-path}}/Main.java", artifacts[0].Template)
}

func TestInstantiateFanout(t *testing.T) {
	e := engine(t, map[string]string{
		"{{mod}}/a.txt": "{{#each mod}}{{this}},{{/each}} in {{proj}}",
	})
	ds := dataSet([]schema.Definition{multi("mod")}, resolve.MapValues{
		schema.ProjectNameArg: {"p"},
		"mod":                 {"api", "error", "kafka"},
	})

	artifacts := e.Instantiate(ds, "{{mod}}/a.txt")

	assert.Equal(t, []string{"api/a.txt", "error/a.txt", "kafka/a.txt"}, names(artifacts))
	for _, a := range artifacts {
		assert.True(t, a.Fanout)
		assert.Equal(t, "api,error,kafka, in p", string(a.Content), "content sees the full data set")
	}
}

func TestInstantiateArrayContent(t *testing.T) {
	e := engine(t, map[string]string{
		"{{mod}}/a.txt": "[{{mod}}] [{{mod-upper}}] [{{pascal mod}}] " +
			"{{#each mod}}{{@index}}={{this}}{{#unless @last}};{{/unless}}{{/each}}",
	})
	ds := dataSet([]schema.Definition{multi("mod")}, resolve.MapValues{
		"mod": {"api", "error", "kafka"},
	})

	artifacts := e.Instantiate(ds, "{{mod}}/a.txt")

	require.Len(t, artifacts, 3)
	for _, a := range artifacts {
		assert.Equal(t,
			"[api, error, kafka] [API, ERROR, KAFKA] [Api, Error, Kafka] 0=api;1=error;2=kafka",
			string(a.Content), a.Name)
	}
}

func TestInstantiateEmptyArrayContent(t *testing.T) {
	e := engine(t, map[string]string{
		"out": "{{#if db}}db{{else}}no db{{/if}}|{{db}}|{{#each db}}x{{else}}none{{/each}}",
	})
	defs := []schema.Definition{{Name: "db", Kind: schema.MultiValue{Default: []string{}}}}

	artifacts := e.Instantiate(dataSet(defs, resolve.MapValues{}), "out")

	require.Len(t, artifacts, 1)
	assert.Equal(t, "no db||none", string(artifacts[0].Content))
}

func TestInstantiateFanoutOnSeveralMultiValues(t *testing.T) {
	e := engine(t, map[string]string{"{{a}}/{{b}}.txt": "{{a}}|{{b}}"})
	ds := dataSet([]schema.Definition{multi("a"), multi("b")}, resolve.MapValues{
		"a": {"x", "y"},
		"b": {"p", "q"},
	})

	artifacts := e.Instantiate(ds, "{{a}}/{{b}}.txt")

	assert.Equal(t, []string{"x/p.txt", "x/q.txt", "y/p.txt", "y/q.txt"}, names(artifacts))
	for _, a := range artifacts {
		assert.True(t, a.Fanout)
		assert.Equal(t, "x, y|p, q", string(a.Content))
	}
}

func TestInstantiateFanoutIgnoresUnreferencedMultiValue(t *testing.T) {
	e := engine(t, map[string]string{"{{a}}.txt": ""})
	ds := dataSet([]schema.Definition{multi("a"), multi("b")}, resolve.MapValues{
		"a": {"x", "y"},
		"b": {"p", "q"},
	})

	assert.Equal(t, []string{"x.txt", "y.txt"}, names(e.Instantiate(ds, "{{a}}.txt")))
}

func TestCombinations(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		want  [][]int
	}{
		{"no group", nil, nil},
		{"one group", []int{3}, [][]int{{0}, {1}, {2}}},
		{"two groups", []int{2, 2}, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"empty group", []int{2, 0}, [][]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var groups []fanoutGroup
			for _, size := range tt.sizes {
				groups = append(groups, fanoutGroup{size: size})
			}
			got := combinations(groups)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstantiateFanoutKeepsValueOrder(t *testing.T) {
	e := engine(t, map[string]string{"{{mod}}.rs": ""})
	ds := dataSet([]schema.Definition{multi("mod")}, resolve.MapValues{"mod": {"zeta", "alpha", "mid"}})

	assert.Equal(t, []string{"zeta.rs", "alpha.rs", "mid.rs"}, names(e.Instantiate(ds, "{{mod}}.rs")))
}

func TestInstantiateFanoutOnVariant(t *testing.T) {
	e := engine(t, map[string]string{"{{mod-snake}}/{{mod-pascal}}.rs": ""})
	ds := dataSet([]schema.Definition{multi("mod")}, resolve.MapValues{"mod": {"my-api", "the-error"}})

	assert.Equal(t, []string{"my_api/MyApi.rs", "the_error/TheError.rs"}, names(e.Instantiate(ds, "{{mod-snake}}/{{mod-pascal}}.rs")))
}

func TestInstantiateNoFanoutWithoutReference(t *testing.T) {
	e := engine(t, map[string]string{"Cargo.toml": "{{#each mod}}{{this}} {{/each}}"})
	ds := dataSet([]schema.Definition{multi("mod"), multi("db")}, resolve.MapValues{
		"mod": {"api", "error"},
		"db":  {"pg"},
	})

	artifacts := e.Instantiate(ds, "Cargo.toml")

	require.Len(t, artifacts, 1)
	assert.Equal(t, "Cargo.toml", artifacts[0].Name)
	assert.False(t, artifacts[0].Fanout)
	assert.Equal(t, "api error ", string(artifacts[0].Content))
}

func TestInstantiateFanoutDeduplicatesNames(t *testing.T) {
	e := engine(t, map[string]string{"{{mod}}/x": ""})
	ds := dataSet([]schema.Definition{multi("mod")}, resolve.MapValues{"mod": {"a", "b", "a"}})

	assert.Equal(t, []string{"a/x", "b/x"}, names(e.Instantiate(ds, "{{mod}}/x")))
}

func TestInstantiateFanoutBranchOverride(t *testing.T) {
	e := engine(t, map[string]string{
		"{{mod}}/lib.rs": "generic {{proj}}",
		"kafka/lib.rs":   "kafka specific",
	})
	ds := dataSet([]schema.Definition{multi("mod")}, resolve.MapValues{
		schema.ProjectNameArg: {"p"},
		"mod":                 {"api", "kafka"},
	})

	artifacts := e.Instantiate(ds, "{{mod}}/lib.rs")

	require.Len(t, artifacts, 2)
	assert.Equal(t, "generic p", string(artifacts[0].Content))
	assert.Equal(t, "kafka specific", string(artifacts[1].Content))
}

func TestInstantiateAllKeepsOverriddenBranchOnce(t *testing.T) {
	e := engine(t, map[string]string{
		"{{mod}}/lib.rs": "generic {{proj}}",
		"kafka/lib.rs":   "kafka specific",
	})
	ds := dataSet([]schema.Definition{multi("mod")}, resolve.MapValues{
		schema.ProjectNameArg: {"p"},
		"mod":                 {"api", "kafka"},
	})

	var names []string
	for _, a := range e.InstantiateAll(ds) {
		names = append(names, a.Name)
	}

	assert.ElementsMatch(t, []string{"api/lib.rs", "kafka/lib.rs"}, names)
}

func TestInstantiateWithoutMultiValue(t *testing.T) {
	e := engine(t, map[string]string{"{{mod}}/a.txt": "x"})
	ds := dataSet([]schema.Definition{multi("mod")}, resolve.MapValues{})

	artifacts := e.Instantiate(ds, "{{mod}}/a.txt")

	require.Len(t, artifacts, 1)
	assert.Equal(t, "/a.txt", artifacts[0].Name)
	assert.False(t, artifacts[0].Fanout)
}

func TestInstantiateReadme(t *testing.T) {
	e := engine(t, map[string]string{
		"README.md":     "# {{proj}}",
		"src/README.md": "sources",
		"main.rs":       "fn main() {}",
	})

	t.Run("suppressed by default", func(t *testing.T) {
		ds := dataSet(nil, resolve.MapValues{})
		assert.Equal(t, []string{"main.rs"}, names(e.InstantiateAll(ds)))
	})

	t.Run("rendered with readme", func(t *testing.T) {
		ds := dataSet(nil, resolve.MapValues{schema.ArgReadme: nil, schema.ProjectNameArg: {"p"}})
		artifacts := e.InstantiateAll(ds)
		assert.Equal(t, []string{"README.md", "main.rs", "src/README.md"}, names(artifacts))
		assert.Equal(t, "# p", string(artifacts[0].Content))
	})
}

func TestInstantiateRenderFailureSkipsArtifact(t *testing.T) {
	e := engine(t, map[string]string{
		"bad.txt":  "{{kebab}}",
		"good.txt": "ok",
	})
	ds := dataSet(nil, resolve.MapValues{})

	assert.Equal(t, []string{"good.txt"}, names(e.InstantiateAll(ds)))
}

func TestInstantiateUnknownTemplate(t *testing.T) {
	e := New()
	ds := dataSet(nil, resolve.MapValues{})
	assert.Empty(t, e.Instantiate(ds, "missing.txt"))
}

func TestHelpers(t *testing.T) {
	e := engine(t, map[string]string{
		"out": "{{kebab name}}|{{constant name}}|{{join mod \", \"}}",
	})
	ds := dataSet([]schema.Definition{{Name: "name"}, multi("mod")}, resolve.MapValues{
		"name": {"helloWorld"},
		"mod":  {"a", "b"},
	})

	artifacts := e.Instantiate(ds, "out")
	require.Len(t, artifacts, 1)
	assert.Equal(t, "hello-world|HELLO_WORLD|a, b", string(artifacts[0].Content))
}

func TestList(t *testing.T) {
	values := []string{"a", "b"}
	l := NewList(values)
	values[0] = "changed"

	assert.Equal(t, "a, b", l.String())
	assert.Equal(t, []string{"a", "b"}, l.Values())
	assert.Equal(t, "a-b", join(l, "-"))
}

func TestFlagsInContent(t *testing.T) {
	e := engine(t, map[string]string{
		"out": "{{#if with-kafka}}kafka{{else}}none{{/if}}",
	})
	defs := []schema.Definition{{Name: "with-kafka", Kind: schema.Flag{Negate: true}}}

	on := e.Instantiate(dataSet(defs, resolve.MapValues{}), "out")
	off := e.Instantiate(dataSet(defs, resolve.MapValues{"with-kafka": nil}), "out")

	assert.Equal(t, "kafka", string(on[0].Content))
	assert.Equal(t, "none", string(off[0].Content))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"Cargo.toml.hbs":  "name = \"{{proj}}\"",
		"src/main.rs.hbs": "fn main() {}",
		"!gitignore.hbs":  "target",
		"zr.toml":         "[a]",
		"notes.txt":       "not a template",
		"broken.hbs":      "{{#if}}",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	e, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"!gitignore", "Cargo.toml", "src/main.rs"}, e.Names())
	assert.True(t, e.Has("src/main.rs"))
	assert.False(t, e.Has("zr.toml"))
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReferences(t *testing.T) {
	refs := References("{{mod}}/{{{ raw }}}/{{~trim~}}/{{#each items}}{{/each}}/{{kebab name}}")
	for _, id := range []string{"mod", "raw", "trim", "each", "items", "kebab", "name"} {
		assert.True(t, refs[id], id)
	}
	assert.Empty(t, References("plain/path.txt"))
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in      string
		escaped bool
		want    string
	}{
		{"!gitignore", true, ".gitignore"},
		{"!github", true, ".github"},
		{"gitignore", false, "gitignore"},
		{"!", false, "!"},
		{"a!b", false, "a!b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.escaped, IsEscaped(tt.in))
			assert.Equal(t, tt.want, Unescape(tt.in))
		})
	}
}
