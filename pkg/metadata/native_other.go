//go:build !windows

package metadata

import "io/fs"

func nativeAttributes(fs.FileInfo) (uint32, bool) {
	return 0, false
}
