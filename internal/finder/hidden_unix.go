//go:build !windows

package finder

// Unix has no hidden attribute bit; the dot-name convention is the whole
// story.
func isHiddenAttr(string) bool {
	return false
}
