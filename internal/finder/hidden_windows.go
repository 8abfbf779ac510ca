//go:build windows

package finder

import "golang.org/x/sys/windows"

// isHiddenAttr checks the FILE_ATTRIBUTE_HIDDEN bit. Any failure to query
// the attributes reports "not hidden".
func isHiddenAttr(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
