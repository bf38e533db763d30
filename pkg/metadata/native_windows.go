//go:build windows

package metadata

import (
	"io/fs"
	"syscall"
)

// nativeAttributes returns the attribute word that os.Stat and os.Lstat keep in FileInfo.Sys on Windows.
func nativeAttributes(info fs.FileInfo) (uint32, bool) {
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok && d != nil {
		return d.FileAttributes, true
	}
	return 0, false
}
