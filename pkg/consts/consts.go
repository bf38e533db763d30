package consts

const (
	// Width of the attribute column produced by AttributeSet.String.
	ATTR_STRING_LENGTH = 6

	// Character printed for an attribute that is not set.
	ATTR_UNSET = '-'

	// Column characters, in output order. They match the attribute column of a Windows directory listing.
	ATTR_DIRECTORY     = 'd'
	ATTR_ARCHIVE       = 'a'
	ATTR_READ_ONLY     = 'r'
	ATTR_HIDDEN        = 'h'
	ATTR_SYSTEM        = 's'
	ATTR_REPARSE_POINT = 'l'

	// Number of bits in a file attribute word.
	ATTR_WORD_BITS = 32

	// Highest documented bit position. Bits above it are ignored when decoding.
	ATTR_HIGHEST_BIT = 22
)
