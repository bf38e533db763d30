package validation

import (
	"regexp"

	"github.com/bgrewell/attr-kit/pkg/consts"
)

// columnLetters holds the character of each position of a rendered attribute column.
var columnLetters = [consts.ATTR_STRING_LENGTH]byte{
	consts.ATTR_DIRECTORY,
	consts.ATTR_ARCHIVE,
	consts.ATTR_READ_ONLY,
	consts.ATTR_HIDDEN,
	consts.ATTR_SYSTEM,
	consts.ATTR_REPARSE_POINT,
}

// ValidAttributeColumn returns true if s has the shape of a rendered attribute column: six characters, each either
// the letter of its position or '-', and exactly one of the directory and archive positions set.
func ValidAttributeColumn(s string) bool {
	if !validateColumnBytes(s) {
		return false
	}
	return (s[0] == consts.ATTR_UNSET) != (s[1] == consts.ATTR_UNSET)
}

// validateColumnBytes checks each position of the column against its letter.
func validateColumnBytes(s string) bool {
	if len(s) != consts.ATTR_STRING_LENGTH {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != columnLetters[i] && s[i] != consts.ATTR_UNSET {
			return false
		}
	}
	return true
}

// Precompile the regular expression for the column shape.
var columnRegexp = func() *regexp.Regexp {
	expr := "^"
	for _, c := range columnLetters {
		expr += "[" + regexp.QuoteMeta(string(rune(c))) + regexp.QuoteMeta(string(rune(consts.ATTR_UNSET))) + "]"
	}
	return regexp.MustCompile(expr + "$")
}()

// validateColumnRegex uses a regular expression to validate the column shape.
func validateColumnRegex(s string) bool {
	return columnRegexp.MatchString(s)
}
