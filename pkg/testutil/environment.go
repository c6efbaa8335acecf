package testutil

import (
	"testing"

	"github.com/beltram/zr/pkg/paths"
)

// Dirs are the directories an isolated test runs with
type Dirs struct {
	Config string
	Cache  string
	State  string
}

// Isolate points ZR_CONFIG_DIR, ZR_CACHE_DIR and ZR_STATE_DIR at fresh
// temporary directories for the duration of the test
func Isolate(t *testing.T) Dirs {
	t.Helper()

	dirs := Dirs{
		Config: t.TempDir(),
		Cache:  t.TempDir(),
		State:  t.TempDir(),
	}
	t.Setenv(paths.EnvZrConfigDir, dirs.Config)
	t.Setenv(paths.EnvZrCacheDir, dirs.Cache)
	t.Setenv(paths.EnvZrStateDir, dirs.State)
	return dirs
}
