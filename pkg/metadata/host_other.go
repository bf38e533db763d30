//go:build !windows

package metadata

import (
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/spf13/afero"
)

// Host returns a reader over the operating system filesystem. Outside Windows there is no attribute word, so it
// is derived from the file mode.
func Host(logger *logging.Logger) Reader {
	return NewFsReader(afero.NewOsFs(), logger)
}
