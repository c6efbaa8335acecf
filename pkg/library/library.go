// Package library discovers the templates of the configured template
// repositories.
//
// A repository root holds one directory per template, named
// `<lang>-<kind>`, plus an optional root schema inherited by all of them:
//
//	java-spring-boot/
//	    zr.toml
//	    src/main/java/{{proj-path}}/App.java.hbs
//	rust-lib/
//	zr.toml
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beltram/zr/pkg/config"
	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/paths"
	"github.com/beltram/zr/pkg/render"
	"github.com/beltram/zr/pkg/schema"
)

// Template is one template directory of a repository
type Template struct {
	Lang string
	Kind string
	// Path is the template directory
	Path string
	// Root is the repository root holding the template
	Root string
}

// Name returns the directory name of the template
func (t Template) Name() string {
	return t.Lang + "-" + t.Kind
}

// Schema returns the effective schema of the template, standard arguments
// first
func (t Template) Schema() *schema.Schema {
	return schema.WithStandard(schema.Effective(schema.Root(t.Root), t.Path))
}

// Engine loads the template files of the template
func (t Template) Engine() (*render.Engine, error) {
	return render.Load(t.Path)
}

// Library is an ordered list of repository roots
type Library struct {
	Roots []string
}

// New returns a library over the given roots, searched in order
func New(roots ...string) *Library {
	return &Library{Roots: roots}
}

// FromConfig returns the library of the cached clones of the configured
// repositories
func FromConfig(cfg *config.Config, p paths.Paths) *Library {
	roots := make([]string, 0, len(cfg.Repositories))
	for _, url := range cfg.Repositories {
		roots = append(roots, p.RepositoryDir(url))
	}
	return New(roots...)
}

// ParseDirName splits a template directory name on its first dash.
func ParseDirName(name string) (lang, kind string, ok bool) {
	lang, kind, ok = strings.Cut(name, "-")
	if !ok || lang == "" || kind == "" {
		return "", "", false
	}
	return lang, kind, true
}

// Scan returns the templates of one repository root, sorted by name
func Scan(root string) ([]Template, error) {
	logger := logging.GetLogger("library")

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "repository not found").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read repository").
			WithDetail("path", root)
	}

	var templates []Template
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		lang, kind, ok := ParseDirName(name)
		if !ok {
			logger.Trace().Str("name", name).Msg("Skipping directory")
			continue
		}
		templates = append(templates, Template{
			Lang: lang,
			Kind: kind,
			Path: filepath.Join(root, name),
			Root: root,
		})
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name() < templates[j].Name()
	})
	return templates, nil
}

// Templates returns the templates of every root. A template shadowed by a
// template of the same name in an earlier root is left out. Unreadable
// roots are logged and skipped.
func (l *Library) Templates() []Template {
	logger := logging.GetLogger("library")

	seen := make(map[string]bool)
	var all []Template
	for _, root := range l.Roots {
		templates, err := Scan(root)
		if err != nil {
			logger.Warn().Err(err).Str("root", root).Msg("Skipping repository")
			continue
		}
		for _, t := range templates {
			if seen[t.Name()] {
				continue
			}
			seen[t.Name()] = true
			all = append(all, t)
		}
	}
	logger.Debug().Int("count", len(all)).Msg("Found templates")
	return all
}

// Languages returns the distinct languages of the library, sorted
func (l *Library) Languages() []string {
	set := make(map[string]bool)
	for _, t := range l.Templates() {
		set[t.Lang] = true
	}
	langs := make([]string, 0, len(set))
	for lang := range set {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Kinds returns the templates of lang
func (l *Library) Kinds(lang string) []Template {
	var kinds []Template
	for _, t := range l.Templates() {
		if t.Lang == lang {
			kinds = append(kinds, t)
		}
	}
	return kinds
}

// Find returns the first template named `<lang>-<kind>` across the roots
func (l *Library) Find(lang, kind string) (Template, error) {
	for _, t := range l.Templates() {
		if t.Lang == lang && t.Kind == kind {
			return t, nil
		}
	}
	return Template{}, errors.Newf(errors.ErrTemplateNotFound, "no template %s %s", lang, kind).
		WithDetail("lang", lang).
		WithDetail("kind", kind)
}
