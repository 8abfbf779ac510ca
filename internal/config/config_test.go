package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "*", cfg.Search.Pattern)
	assert.Equal(t, -1, cfg.Search.MaxDepth)
	assert.False(t, cfg.Search.Regex)
	assert.False(t, cfg.Search.IncludeHidden)
	assert.Equal(t, "warn", cfg.Output.LogLevel)
	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Search.MaxDepth = -2
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Output.LogLevel = "loud"
	assert.Error(t, Validate(cfg))
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.filesift.yml out of the test

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Search, cfg.Search)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	content := `search:
  pattern: "*.go"
  max_depth: 2
  ignore_case: true
  exclude:
    - vendor/**
output:
  log_level: error
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".filesift.yaml"), []byte(content), 0o644))

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "*.go", cfg.Search.Pattern)
	assert.Equal(t, 2, cfg.Search.MaxDepth)
	assert.True(t, cfg.Search.IgnoreCase)
	assert.Equal(t, []string{"vendor/**"}, cfg.Search.Exclude)
	assert.Equal(t, "error", cfg.Output.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `search:
  pattern: "*.go"
  max_depth: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".filesift.yaml"), []byte(content), 0o644))

	t.Setenv("HOME", t.TempDir())
	t.Setenv("FILESIFT_SEARCH_PATTERN", "*.md")
	t.Setenv("FILESIFT_SEARCH_MAX_DEPTH", "0")

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "*.md", cfg.Search.Pattern)
	assert.Equal(t, 0, cfg.Search.MaxDepth)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("search:\n  include_hidden: true\n"), 0o644))

	cfg, err := NewFileLoader(file).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Search.IncludeHidden)

	// An explicitly named file that does not exist is an error, unlike a
	// missing file on the search path.
	_, err = NewFileLoader(filepath.Join(dir, "missing.yaml")).Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".filesift.yaml"),
		[]byte("search:\n  max_depth: -5\n"), 0o644))

	_, err := NewLoader(dir).Load()
	assert.Error(t, err)
}
