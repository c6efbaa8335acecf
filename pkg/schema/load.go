package schema

import (
	"os"
	"path/filepath"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
)

// FileName is the base name of schema files, without extension
const FileName = "zr"

// candidates lists the schema file names looked up in a directory, by priority
var candidates = []struct {
	name   string
	format Format
}{
	{FileName + ".toml", FormatTOML},
	{FileName + ".yaml", FormatYAML},
	{FileName + ".yml", FormatYAML},
}

// Find returns the schema file of dir, or "" when there is none
func Find(dir string) (string, Format) {
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, c.format
		}
	}
	return "", ""
}

// Load reads the schema file of dir. A directory without schema file yields
// an empty schema and found == false.
func Load(dir string) (s *Schema, found bool, err error) {
	path, format := Find(dir)
	if path == "" {
		return New(), false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, true, errors.Wrapf(err, errors.ErrSchemaRead, "failed to read %s", path).
			WithDetail("path", path)
	}

	s, err = Parse(data, format)
	if err != nil {
		if zrErr, ok := err.(*errors.ZrError); ok {
			zrErr.WithDetail("path", path)
		}
		return nil, true, err
	}
	return s, true, nil
}

// Root loads the ancestor schema at the root of a template library.
// An unreadable or malformed file is logged and treated as empty.
func Root(rootDir string) *Schema {
	log := logging.GetLogger("schema")

	s, _, err := Load(rootDir)
	if err != nil {
		log.Warn().Err(err).Str("dir", rootDir).Msg("Ignoring invalid root schema")
		return New()
	}
	return s
}

// Effective returns the schema of the template in templateDir: the ancestor
// when the template has no schema file or an invalid one, Merge(ancestor,
// local) otherwise.
func Effective(ancestor *Schema, templateDir string) *Schema {
	log := logging.GetLogger("schema")

	local, found, err := Load(templateDir)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("template", templateDir).Msg("Invalid template schema, using the root schema")
		return Merge(ancestor, nil)
	case !found:
		return Merge(ancestor, nil)
	default:
		log.Debug().Str("template", templateDir).Int("arguments", local.Len()).Msg("Loaded template schema")
		return Merge(ancestor, local)
	}
}
