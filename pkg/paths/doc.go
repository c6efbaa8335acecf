// Package paths provides centralized path handling for zr.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/zr (config.toml)
//   - Cache: $XDG_CACHE_HOME/zr (one clone per template repository)
//   - State: $XDG_STATE_HOME/zr (zr.log)
//
// # Environment Variables
//
//   - ZR_CONFIG_DIR: Override the config directory
//   - ZR_CACHE_DIR: Override the cache directory
//   - ZR_STATE_DIR: Override the state directory
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    return err
//	}
//	cfg := p.ConfigFilePath()                          // ~/.config/zr/config.toml
//	dir := p.RepositoryDir("https://github.com/x/y")   // ~/.cache/zr/<sha256 of url>
package paths
