package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHiddenName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{".hidden", true},
		{".gitignore", true},
		{"visible.txt", false},
		{"normal", false},
		{".", false},
		{"..", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isHiddenName(tt.name), "name %q", tt.name)
	}
}

func TestIsHidden_Paths(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHidden("/path/to/.hidden"))
	assert.False(t, IsHidden("/path/to/visible.txt"))
	assert.True(t, IsHidden("../.cache"))
	// only the base name counts, not hidden ancestors
	assert.False(t, IsHidden("/home/.config/visible.txt"))
}
