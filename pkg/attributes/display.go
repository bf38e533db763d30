package attributes

import "github.com/bgrewell/attr-kit/pkg/consts"

// String renders the attribute column of a directory listing: directory, archive, read-only, hidden, system and
// reparse point, with '-' for each attribute that is not set. A directory never shows read-only.
func (s AttributeSet) String() string {
	var b [consts.ATTR_STRING_LENGTH]byte
	f, isFile := s.Kind().(File)
	column := func(i int, set bool, c byte) {
		if set {
			b[i] = c
		} else {
			b[i] = consts.ATTR_UNSET
		}
	}
	column(0, !isFile, consts.ATTR_DIRECTORY)
	column(1, isFile, consts.ATTR_ARCHIVE)
	column(2, isFile && f.ReadOnly, consts.ATTR_READ_ONLY)
	column(3, s.Hidden(), consts.ATTR_HIDDEN)
	column(4, s.System(), consts.ATTR_SYSTEM)
	column(5, s.ReparsePoint(), consts.ATTR_REPARSE_POINT)
	return string(b[:])
}
