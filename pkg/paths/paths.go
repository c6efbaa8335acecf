package paths

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/beltram/zr/pkg/errors"
)

// Environment variable names
const (
	// EnvZrConfigDir overrides the XDG config directory for zr
	EnvZrConfigDir = "ZR_CONFIG_DIR"

	// EnvZrCacheDir overrides the XDG cache directory for zr
	EnvZrCacheDir = "ZR_CACHE_DIR"

	// EnvZrStateDir overrides the XDG state directory for zr
	EnvZrStateDir = "ZR_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside zr's directories. These are not user-configurable.
const (
	// ZrDirName is the directory name used under each XDG base
	ZrDirName = "zr"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// SchemaFileName is the argument schema file found at a repository
	// root and optionally inside each template directory
	SchemaFileName = "zr.toml"

	// LogFileName is the name of the log file
	LogFileName = "zr.log"
)

// Paths locates zr's configuration, cache and state on disk
type Paths interface {
	ConfigDir() string
	CacheDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
	RepositoryDir(url string) string
}

type paths struct {
	xdgConfig string
	xdgCache  string
	xdgState  string
}

// New resolves zr's directories. Each ZR_* variable replaces the matching
// XDG base joined with "zr"; the result must be absolute.
func New() (Paths, error) {
	p := &paths{
		xdgConfig: resolveDir(EnvZrConfigDir, xdg.ConfigHome),
		xdgCache:  resolveDir(EnvZrCacheDir, xdg.CacheHome),
		xdgState:  resolveDir(EnvZrStateDir, xdg.StateHome),
	}
	for _, dir := range []string{p.xdgConfig, p.xdgCache, p.xdgState} {
		if !filepath.IsAbs(dir) {
			return nil, errors.Newf(errors.ErrInvalidInput, "zr directory must be absolute: %s", dir)
		}
	}
	return p, nil
}

func resolveDir(env, base string) string {
	if dir := os.Getenv(env); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(base, ZrDirName)
}

// ConfigDir returns the config directory for zr
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// CacheDir returns the cache directory holding cloned template repositories
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the state directory for zr
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path of the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the zr log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// RepositoryDir returns the local clone directory of a template repository.
// The directory name is the hex sha256 of the url so that any url maps to a
// stable, filesystem-safe name.
func (p *paths) RepositoryDir(url string) string {
	return filepath.Join(p.xdgCache, HashURL(url))
}

// HashURL returns the lowercase hex sha256 digest of url
func HashURL(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// ExpandHome expands a leading ~ or ~/ to the home directory. ~user is
// left alone.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		if home = os.Getenv(EnvHome); home == "" {
			return path
		}
	}
	return filepath.Join(home, path[1:])
}
