package helpers

import "strings"

// TruncateLeft shortens input to at most maxLength bytes by dropping its beginning, which keeps the file name at
// the end of a path visible. A truncated string starts with "...".
func TruncateLeft(input string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if len(input) <= maxLength {
		return input
	}
	if maxLength <= 3 {
		return input[len(input)-maxLength:]
	}
	return "..." + input[len(input)-(maxLength-3):]
}

// PadRight pads s with spaces to length. Longer strings are returned unchanged.
func PadRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
