// Test Type: Unit Test
// Description: Tests for repository list editing

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beltram/zr/pkg/config"
)

func TestAddRepository(t *testing.T) {
	cfg := &config.Config{Repositories: []string{"https://a.git"}}

	assert.False(t, cfg.AddRepository("https://a.git"), "duplicate is ignored")
	assert.False(t, cfg.AddRepository("  "), "blank is ignored")
	assert.True(t, cfg.AddRepository(" https://b.git "))
	assert.Equal(t, []string{"https://a.git", "https://b.git"}, cfg.Repositories)
}

func TestRemoveRepository(t *testing.T) {
	cfg := &config.Config{Repositories: []string{"https://a.git", "https://b.git", "https://c.git"}}

	assert.False(t, cfg.RemoveRepository("https://z.git"))
	assert.True(t, cfg.RemoveRepository("https://b.git"))
	assert.Equal(t, []string{"https://a.git", "https://c.git"}, cfg.Repositories)
}
