package finder

import (
	"path/filepath"
	"strings"
)

// IsHidden reports whether the entry at path is hidden by the platform's
// convention. A failed attribute query counts as "not hidden" so an entry
// is never pruned just because its metadata could not be read.
func IsHidden(path string) bool {
	return isHiddenName(filepath.Base(path)) || isHiddenAttr(path)
}

// isHiddenName reports whether a bare file name is hidden by the dot
// convention. The special entries "." and ".." are not hidden.
func isHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
