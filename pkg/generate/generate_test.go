package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/render"
	"github.com/beltram/zr/pkg/resolve"
	"github.com/beltram/zr/pkg/schema"
	"github.com/beltram/zr/pkg/testutil"
	"github.com/beltram/zr/pkg/ui"
)

type call struct {
	dir         string
	commandLine string
}

type fakeRunner struct {
	calls  []call
	fail   map[string]bool
	// exists records whether the project directory existed when a command ran
	exists []bool
}

func (r *fakeRunner) Run(_ context.Context, dir, commandLine string) error {
	r.calls = append(r.calls, call{dir, commandLine})
	_, err := os.Stat(dir)
	r.exists = append(r.exists, err == nil)
	if r.fail[commandLine] {
		return errors.Newf(errors.ErrCommandFailed, "%s failed", commandLine)
	}
	return nil
}

func (r *fakeRunner) commandLines() []string {
	var out []string
	for _, c := range r.calls {
		out = append(out, c.commandLine)
	}
	return out
}

type countingConfirmer struct {
	answer bool
	asked  int
}

func (c *countingConfirmer) Confirm(string) (bool, error) {
	c.asked++
	return c.answer, nil
}

func templateSchema() *schema.Schema {
	return schema.WithStandard(schema.New(
		schema.Definition{Name: "modules", Kind: schema.MultiValue{}},
		schema.Definition{Name: "build", Kind: schema.Command{Order: 1, DefaultRun: true, CommandLine: "cargo build"}},
		schema.Definition{Name: "fmt", Kind: schema.Command{Order: 0, DefaultRun: true, CommandLine: "cargo fmt"}},
	))
}

func engine(t *testing.T) *render.Engine {
	t.Helper()
	e := render.New()
	templates := map[string]string{
		"Cargo.toml":         `name = "{{proj-kebab}}"`,
		"src/{{modules}}.rs": "// {{proj}}",
		"!gitignore":         "target",
		"!cargo/config.toml": "[build]",
		"README.md":          "# {{proj}}",
	}
	for name, source := range templates {
		require.NoError(t, e.Add(name, source))
	}
	return e
}

func generate(t *testing.T, g *Generator, parent string, raw resolve.MapValues) (*Report, error) {
	t.Helper()
	ds := resolve.Resolve(templateSchema(), raw)
	return g.Generate(context.Background(), parent, ds)
}

func TestGenerate(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{}
	g := &Generator{Engine: engine(t), Runner: runner}

	report, err := generate(t, g, parent, resolve.MapValues{
		schema.ProjectNameArg: {"MyCrate"},
		"modules":             {"api", "db"},
	})
	require.NoError(t, err)

	dir := filepath.Join(parent, "MyCrate")
	assert.Equal(t, dir, report.ProjectDir)
	assert.Empty(t, report.Failed)
	assert.Equal(t, `name = "my-crate"`, testutil.ReadFile(t, filepath.Join(dir, "Cargo.toml")))
	assert.Equal(t, "// MyCrate", testutil.ReadFile(t, filepath.Join(dir, "src", "api.rs")))
	assert.Equal(t, "// MyCrate", testutil.ReadFile(t, filepath.Join(dir, "src", "db.rs")))
	assert.Equal(t, "target", testutil.ReadFile(t, filepath.Join(dir, ".gitignore")))
	assert.FileExists(t, filepath.Join(dir, ".cargo", "config.toml"))
	assert.NoFileExists(t, filepath.Join(dir, "README.md"))

	_, err = gogit.PlainOpen(dir)
	assert.NoError(t, err)
	assert.NoError(t, report.GitErr)

	assert.Equal(t, []string{"cargo fmt", "cargo build"}, runner.commandLines())
	for _, c := range runner.calls {
		assert.Equal(t, dir, c.dir)
	}
	assert.False(t, report.Erased)
}

func TestGenerateReadmeAndOpen(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{}
	g := &Generator{Engine: engine(t), Runner: runner, SkipGit: true}

	report, err := generate(t, g, parent, resolve.MapValues{
		schema.ProjectNameArg: {"demo"},
		schema.ArgReadme:      nil,
		schema.ArgIdea:        nil,
		schema.ArgCode:        nil,
		"build":               nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "# demo", testutil.ReadFile(t, filepath.Join(parent, "demo", "README.md")))
	assert.NoDirExists(t, filepath.Join(parent, "demo", ".git"))
	// build was given explicitly: default-on command suppressed
	assert.Equal(t, []string{"cargo fmt", OpenIdea, OpenCode}, runner.commandLines())
	assert.Len(t, report.Opened, 2)
}

func TestGenerateCommandFailureIsNotFatal(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{"cargo fmt": true}}
	g := &Generator{Engine: engine(t), Runner: runner, SkipGit: true}

	report, err := generate(t, g, t.TempDir(), resolve.MapValues{schema.ProjectNameArg: {"demo"}})
	require.NoError(t, err)

	require.Len(t, report.Commands, 2)
	assert.Error(t, report.Commands[0].Err)
	assert.NoError(t, report.Commands[1].Err)
}

func TestGenerateDryRun(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{}
	g := &Generator{Engine: engine(t), Runner: runner, SkipGit: true}

	report, err := generate(t, g, parent, resolve.MapValues{
		schema.ProjectNameArg: {"demo"},
		schema.ArgDry:         nil,
	})
	require.NoError(t, err)

	assert.True(t, report.Erased)
	assert.NoDirExists(t, filepath.Join(parent, "demo"))
	// commands ran before the project was erased
	assert.Equal(t, []bool{true, true}, runner.exists)
}

func TestGenerateDefaultProjectName(t *testing.T) {
	parent := t.TempDir()
	g := &Generator{Engine: engine(t), Runner: &fakeRunner{}, SkipGit: true}

	report, err := generate(t, g, parent, resolve.MapValues{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(parent, resolve.DefaultProjectName), report.ProjectDir)
}

func TestGenerateExistingProject(t *testing.T) {
	tests := []struct {
		name      string
		raw       resolve.MapValues
		confirmer *countingConfirmer
		wantErr   bool
		asked     int
	}{
		{
			name:      "force erases without asking",
			raw:       resolve.MapValues{schema.ProjectNameArg: {"demo"}, schema.ArgForce: nil},
			confirmer: &countingConfirmer{answer: false},
			asked:     0,
		},
		{
			name:      "user agrees",
			raw:       resolve.MapValues{schema.ProjectNameArg: {"demo"}},
			confirmer: &countingConfirmer{answer: true},
			asked:     1,
		},
		{
			name:      "user refuses",
			raw:       resolve.MapValues{schema.ProjectNameArg: {"demo"}},
			confirmer: &countingConfirmer{answer: false},
			wantErr:   true,
			asked:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := t.TempDir()
			stale := filepath.Join(parent, "demo", "stale.txt")
			require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
			require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

			runner := &fakeRunner{}
			g := &Generator{Engine: engine(t), Runner: runner, Confirmer: tt.confirmer, SkipGit: true}

			report, err := generate(t, g, parent, tt.raw)
			assert.Equal(t, tt.asked, tt.confirmer.asked)

			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrAborted))
				assert.FileExists(t, stale)
				assert.Empty(t, runner.calls)
				return
			}
			require.NoError(t, err)
			assert.True(t, report.Replaced)
			assert.NoFileExists(t, stale)
			assert.FileExists(t, filepath.Join(parent, "demo", "Cargo.toml"))
		})
	}
}

func TestGenerateWithoutConfirmerRefuses(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(parent, "demo"), 0755))

	g := &Generator{Engine: engine(t), Runner: &fakeRunner{}, SkipGit: true}
	_, err := generate(t, g, parent, resolve.MapValues{schema.ProjectNameArg: {"demo"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAborted))
}

var _ ui.Confirmer = (*countingConfirmer)(nil)
