package render

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
)

// Extension is the file extension of templates
const Extension = ".hbs"

// Engine holds the parsed templates of one template directory
type Engine struct {
	templates map[string]*raymond.Template
}

// New returns an engine without templates
func New() *Engine {
	return &Engine{templates: make(map[string]*raymond.Template)}
}

// Add parses source and registers it under name, replacing any template
// with the same name.
func (e *Engine) Add(name, source string) error {
	tpl, err := parse(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateLoad, "failed to parse template %s", name).
			WithDetail("template", name)
	}
	e.templates[name] = tpl
	return nil
}

// Load registers every template file below dir. Templates that fail to
// parse are logged and left out.
func Load(dir string) (*Engine, error) {
	log := logging.GetLogger("render")

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrTemplateNotFound, "template directory %s not found", dir).
			WithDetail("dir", dir)
	}

	e := New()
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Extension) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), Extension)

		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := e.Add(name, string(source)); err != nil {
			log.Warn().Err(err).Str("template", name).Msg("Skipping template")
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "failed to load templates from %s", dir)
	}

	log.Debug().Str("dir", dir).Int("templates", len(e.templates)).Msg("Templates loaded")
	return e, nil
}

// Names returns the registered template names, sorted
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template is registered under name
func (e *Engine) Has(name string) bool {
	_, ok := e.templates[name]
	return ok
}

// Len returns the number of registered templates
func (e *Engine) Len() int {
	return len(e.templates)
}

// renderTemplate renders the registered template name with ctx
func (e *Engine) renderTemplate(name string, ctx map[string]interface{}) (string, error) {
	tpl, ok := e.templates[name]
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "template %s not found", name).
			WithDetail("template", name)
	}
	out, err := tpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render %s", name).
			WithDetail("template", name)
	}
	return out, nil
}

// renderString renders source, typically a template name, with ctx
func renderString(source string, ctx map[string]interface{}) (string, error) {
	tpl, err := parse(source)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to parse %s", source)
	}
	out, err := tpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render %s", source)
	}
	return out, nil
}

func parse(source string) (*raymond.Template, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, err
	}
	tpl.RegisterHelpers(helpers())
	return tpl, nil
}
