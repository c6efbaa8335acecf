package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys
const EnvPrefix = "ZR_"

// Load builds the configuration from the embedded defaults, the file at path
// and ZR_ environment variables. A missing file is created from the defaults.
func Load(path string) (*Config, error) {
	if err := ensureFile(path); err != nil {
		return nil, err
	}

	k, err := loadLayers(path)
	if err != nil {
		return nil, err
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		// Only configuration keys, ZR_CONFIG_DIR and friends belong to paths
		if key != "repositories" {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	return unmarshal(k, path)
}

// LoadFile builds the configuration from the embedded defaults and the file at
// path only. It is the starting point of edits that are saved back to path, so
// that environment overrides never leak into the file.
func LoadFile(path string) (*Config, error) {
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	k, err := loadLayers(path)
	if err != nil {
		return nil, err
	}
	return unmarshal(k, path)
}

// Save writes cfg to cfg.Path as TOML
func Save(cfg *Config) error {
	if cfg.Path == "" {
		return errors.New(errors.ErrConfigWrite, "configuration has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(cfg.Path))
	}

	repos := cfg.Repositories
	if repos == nil {
		repos = []string{}
	}
	data, err := gotoml.Marshal(struct {
		Repositories []string `toml:"repositories"`
	}{repos})
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode configuration")
	}

	if err := os.WriteFile(cfg.Path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", cfg.Path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", cfg.Path).Int("repositories", len(repos)).Msg("Configuration saved")
	return nil
}

func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create %s", path)
	}
	logger := logging.GetLogger("config")
	logger.Info().Str("path", path).Msg("Created default configuration")
	return nil
}

func loadLayers(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path)
	}
	return k, nil
}

func unmarshal(k *koanf.Koanf, path string) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Path = path
	cfg.Repositories = normalize(cfg.Repositories)

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Strs("repositories", cfg.Repositories).Msg("Configuration loaded")
	return &cfg, nil
}

// FromMap builds a configuration from an in-memory map, for callers that
// already hold decoded values.
func FromMap(values map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load configuration map")
	}
	return unmarshal(k, "")
}

// normalize trims entries and drops blanks and duplicates, keeping order
func normalize(repos []string) []string {
	out := make([]string, 0, len(repos))
	seen := make(map[string]bool, len(repos))
	for _, r := range repos {
		r = strings.TrimSpace(r)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
