package main

import (
	"os"

	"github.com/bgrewell/attr-kit"
	"github.com/bgrewell/attr-kit/pkg/attributes"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/spf13/afero"
)

type entry struct {
	path string
	set  attributes.AttributeSet
	err  error
}

// ProgressCallback is called after each element is read.
type ProgressCallback func(currentPath string, count int)

// scan walks root and reads the attributes of every element below it. Failures are recorded on the entry and the
// walk continues.
func scan(fsys afero.Fs, root string, progress ProgressCallback, opts ...options.Option) ([]entry, error) {
	var entries []entry
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// an unreadable directory is reported a second time, right after its own entry
			if n := len(entries); n > 0 && entries[n-1].path == path {
				entries[n-1].err = err
				return nil
			}
			entries = append(entries, entry{path: path, err: err})
			return nil
		}
		s, err := attrkit.Open(path, opts...)
		entries = append(entries, entry{path: path, set: s, err: err})
		if progress != nil {
			progress(path, len(entries))
		}
		return nil
	})
	return entries, err
}

// filter keeps the entries that were read successfully. With hiddenOnly set only hidden or system elements remain.
func filter(entries []entry, hiddenOnly bool) (kept []entry, failed []entry) {
	for _, e := range entries {
		switch {
		case e.err != nil:
			failed = append(failed, e)
		case hiddenOnly && !e.set.Hidden() && !e.set.System():
		default:
			kept = append(kept, e)
		}
	}
	return kept, failed
}

// logFailures reports every failed entry and a summary line when anything failed.
func logFailures(log *logging.Logger, root string, total int, failed []entry) {
	if len(failed) == 0 {
		return
	}
	log = log.WithValues("root", root)
	for _, e := range failed {
		log.Error(e.err, "failed to read attributes", "path", e.path)
	}
	log.Info("scan incomplete", "failed", len(failed), "total", total)
}
