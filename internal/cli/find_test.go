package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filesift/filesift/internal/config"
)

func newSearchFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addSearchFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestSearchOptions_ConfigDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Pattern = "*.go"
	cfg.Search.MaxDepth = 2
	cfg.Search.IgnoreCase = true
	cfg.Search.Exclude = []string{"vendor/**"}

	opts := searchOptions(newSearchFlags(t), cfg)
	assert.Equal(t, "*.go", opts.Pattern)
	assert.Equal(t, 2, opts.MaxDepth)
	assert.True(t, opts.IgnoreCase)
	assert.Equal(t, []string{"vendor/**"}, opts.Exclude)
}

func TestSearchOptions_FlagsWinOverConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Pattern = "*.go"
	cfg.Search.MaxDepth = 2
	cfg.Search.Exclude = []string{"vendor/**"}

	flags := newSearchFlags(t,
		"--pattern", "*.md",
		"--max-depth", "0",
		"--hidden",
		"--exclude", "docs/**",
	)

	opts := searchOptions(flags, cfg)
	assert.Equal(t, "*.md", opts.Pattern)
	assert.Equal(t, 0, opts.MaxDepth)
	assert.True(t, opts.IncludeHidden)
	// excludes accumulate rather than replace
	assert.Equal(t, []string{"vendor/**", "docs/**"}, opts.Exclude)
}

func TestSearchOptions_UnsetFlagsKeepDefaults(t *testing.T) {
	opts := searchOptions(newSearchFlags(t), config.Default())
	assert.Equal(t, "*", opts.Pattern)
	assert.Equal(t, -1, opts.MaxDepth)
	assert.False(t, opts.UseRegex)
	assert.False(t, opts.IncludeHidden)
}

func TestRootCommand_FindsFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.filesift.yml out of the run

	root := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--pattern", "*.txt", "--quiet", root})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Fields(strings.TrimSpace(out.String()))
	sort.Strings(lines)
	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
	}, lines)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "filesift")
}
