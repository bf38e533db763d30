// Package metadata provides the readers that fetch raw attribute words from a filesystem. They are the host-side
// collaborators of attributes.FromPath.
package metadata

import (
	"io/fs"
	"strings"

	"github.com/bgrewell/attr-kit/pkg/attributes"
	"github.com/bgrewell/attr-kit/pkg/flags"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Reader returns the raw attribute word of the element at path.
type Reader = attributes.RawAttributeReader

// FsReader reads attribute words through an afero filesystem. When the filesystem returns native Windows
// attribute data the word is passed through unchanged, otherwise it is derived from the file mode.
type FsReader struct {
	fs     afero.Fs
	logger *logging.Logger
}

// NewFsReader returns a reader over fsys. A nil logger discards output.
func NewFsReader(fsys afero.Fs, logger *logging.Logger) *FsReader {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &FsReader{fs: fsys, logger: logger}
}

// RawAttributes implements Reader. Symbolic links are not followed when the filesystem supports Lstat.
func (r *FsReader) RawAttributes(path string) (uint32, error) {
	var info fs.FileInfo
	var err error
	if lfs, ok := r.fs.(afero.Lstater); ok {
		info, _, err = lfs.LstatIfPossible(path)
	} else {
		info, err = r.fs.Stat(path)
	}
	if err != nil {
		r.logger.Debug("stat failed", "path", path, "error", err)
		return 0, errors.Wrapf(err, "reading attributes of %s", path)
	}

	if raw, ok := nativeAttributes(info); ok {
		r.logger.Trace("read native attributes", "path", path, "raw", logging.Raw(raw))
		return raw, nil
	}
	raw := FromFileInfo(info)
	r.logger.Trace("derived attributes from file mode", "path", path, "mode", info.Mode(), "raw", logging.Raw(raw))
	return raw, nil
}

// FromFileInfo derives an attribute word from a FileInfo that carries no native attribute data:
//
//	directory           -> directory, otherwise archive
//	no owner write bit  -> read-only (files only)
//	name starts with .  -> hidden
//	symbolic link       -> reparse point
//	device              -> device
//	temporary (Plan 9)  -> temporary (files only)
func FromFileInfo(info fs.FileInfo) uint32 {
	mode := info.Mode()
	var raw uint32
	if mode.IsDir() {
		raw |= flags.Directory.Mask()
	} else {
		raw |= flags.Archive.Mask()
		if mode.Perm()&0o200 == 0 {
			raw |= flags.ReadOnly.Mask()
		}
		if mode&fs.ModeTemporary != 0 {
			raw |= flags.Temporary.Mask()
		}
	}
	if name := info.Name(); strings.HasPrefix(name, ".") && name != "." && name != ".." {
		raw |= flags.Hidden.Mask()
	}
	if mode&fs.ModeSymlink != 0 {
		raw |= flags.ReparsePoint.Mask()
	}
	if mode&fs.ModeDevice != 0 {
		raw |= flags.Device.Mask()
	}
	return raw
}
