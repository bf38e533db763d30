//go:build windows

package metadata

import (
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type hostReader struct {
	logger *logging.Logger
}

// Host returns the reader backed by GetFileAttributesW.
func Host(logger *logging.Logger) Reader {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &hostReader{logger: logger}
}

func (h *hostReader) RawAttributes(path string) (uint32, error) {
	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid path %q", path)
	}
	raw, err := windows.GetFileAttributes(ptr)
	if err != nil {
		h.logger.Debug("GetFileAttributes failed", "path", path, "error", err)
		return 0, errors.Wrapf(err, "reading attributes of %s", path)
	}
	h.logger.Trace("read host attributes", "path", path, "raw", logging.Raw(raw))
	return raw, nil
}
