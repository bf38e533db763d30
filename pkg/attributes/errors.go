package attributes

import "fmt"

// ErrorKind classifies the failures an attribute set can report.
type ErrorKind int

const (
	// FileNotFound means the metadata reader could not resolve the path.
	FileNotFound ErrorKind = iota + 1
	// ConflictingFlags means a change would make the element both a directory and a file.
	ConflictingFlags
	// NotAFile means a file-only attribute was accessed on a directory.
	NotAFile
	// InvalidAttributeState means a change conflicts with attributes that are currently set.
	InvalidAttributeState
)

func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case ConflictingFlags:
		return "conflicting flags"
	case NotAFile:
		return "not a file"
	case InvalidAttributeState:
		return "invalid attribute state"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is returned by every fallible operation in this package.
type Error struct {
	Kind   ErrorKind
	Detail string
	// Err is the underlying cause, if any. Only set for FileNotFound.
	Err error
}

// Sentinels for use with errors.Is. They match any *Error of the same kind.
var (
	ErrFileNotFound          = &Error{Kind: FileNotFound}
	ErrConflictingFlags      = &Error{Kind: ConflictingFlags}
	ErrNotAFile              = &Error{Kind: NotAFile}
	ErrInvalidAttributeState = &Error{Kind: InvalidAttributeState}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func notAFile(attr string) error {
	return &Error{Kind: NotAFile, Detail: fmt.Sprintf("the %s attribute is exclusive to files", attr)}
}
