package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobMatcher_Anchored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		// * matches any run of characters, anchored at both ends
		{"*.txt", "a.txt", true},
		{"*.txt", "notes.txt", true},
		{"*.txt", "a.txt.bak", false},
		{"*.txt", "txt", false},
		{"*", "anything.at.all", true},
		// ? matches exactly one character
		{"report?.csv", "report1.csv", true},
		{"report?.csv", "report12.csv", false},
		{"report?.csv", "report.csv", false},
		// regex metacharacters are literal in glob mode
		{"a+b.txt", "a+b.txt", true},
		{"a+b.txt", "aab.txt", false},
		{"file[1].log", "file[1].log", true},
		{"file[1].log", "file1.log", false},
		{"{a,b}.go", "{a,b}.go", true},
		{"{a,b}.go", "a.go", false},
		// empty pattern matches everything
		{"", "whatever", true},
	}

	for _, tt := range tests {
		m, err := newMatcher(tt.pattern, false, false)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.matches(tt.name),
			"pattern %q against %q", tt.pattern, tt.name)
	}
}

func TestRegexMatcher_Substring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		// regex mode is a search, not anchored
		{`\d+`, "file123.log", true},
		{`\d+`, "file.log", false},
		{`^file`, "file123.log", true},
		{`log$`, "file123.log", true},
		{`^exact\.txt$`, "exact.txt", true},
		{`^exact\.txt$`, "notexact.txt", false},
	}

	for _, tt := range tests {
		m, err := newMatcher(tt.pattern, true, false)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.matches(tt.name),
			"pattern %q against %q", tt.pattern, tt.name)
	}
}

func TestMatcher_IgnoreCase(t *testing.T) {
	t.Parallel()

	sensitive, err := newMatcher("*.TXT", false, false)
	require.NoError(t, err)
	assert.False(t, sensitive.matches("a.txt"))
	assert.True(t, sensitive.matches("a.TXT"))

	insensitive, err := newMatcher("*.TXT", false, true)
	require.NoError(t, err)
	assert.True(t, insensitive.matches("a.txt"))
	assert.True(t, insensitive.matches("a.TxT"))

	re, err := newMatcher("README", true, true)
	require.NoError(t, err)
	assert.True(t, re.matches("readme.md"))
}

func TestMatcher_InvalidRegex(t *testing.T) {
	t.Parallel()

	_, err := newMatcher("[unclosed", true, false)
	assert.Error(t, err)
}
