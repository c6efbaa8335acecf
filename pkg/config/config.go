package config

import (
	"slices"
	"strings"
)

// Config is zr's global configuration
type Config struct {
	// Repositories are the git urls of the template libraries, in lookup order
	Repositories []string `koanf:"repositories" toml:"repositories"`

	// Path is the file this configuration was loaded from
	Path string `koanf:"-" toml:"-"`
}

// AddRepository appends url unless it is already configured.
// It returns false when the list was left unchanged.
func (c *Config) AddRepository(url string) bool {
	url = strings.TrimSpace(url)
	if url == "" || slices.Contains(c.Repositories, url) {
		return false
	}
	c.Repositories = append(c.Repositories, url)
	return true
}

// RemoveRepository removes url from the configured repositories.
// It returns false when url was not configured.
func (c *Config) RemoveRepository(url string) bool {
	url = strings.TrimSpace(url)
	idx := slices.Index(c.Repositories, url)
	if idx < 0 {
		return false
	}
	c.Repositories = slices.Delete(c.Repositories, idx, idx+1)
	return true
}
