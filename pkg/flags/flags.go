package flags

import "strings"

// Attribute identifies a single documented file attribute. The numeric value is an index into Table, not the bit
// position; use BitFor or Mask for the encoded form.
//
// The bit positions follow the Windows file attribute constants:
//
//	Bit 0  ("ReadOnly"):           FILE_ATTRIBUTE_READONLY
//	Bit 1  ("Hidden"):             FILE_ATTRIBUTE_HIDDEN
//	Bit 2  ("System"):             FILE_ATTRIBUTE_SYSTEM
//	Bit 3:                         Reserved, never decoded or encoded
//	Bit 4  ("Directory"):          FILE_ATTRIBUTE_DIRECTORY
//	Bit 5  ("Archive"):            FILE_ATTRIBUTE_ARCHIVE
//	Bit 6  ("Device"):             FILE_ATTRIBUTE_DEVICE, reserved for system use
//	Bit 7  ("Normal"):             FILE_ATTRIBUTE_NORMAL
//	Bit 8  ("Temporary"):          FILE_ATTRIBUTE_TEMPORARY
//	Bit 9  ("Sparse"):             FILE_ATTRIBUTE_SPARSE_FILE
//	Bit 10 ("ReparsePoint"):       FILE_ATTRIBUTE_REPARSE_POINT
//	Bit 11 ("Compressed"):         FILE_ATTRIBUTE_COMPRESSED
//	Bit 12 ("Offline"):            FILE_ATTRIBUTE_OFFLINE
//	Bit 13 ("NotContentIndexed"):  FILE_ATTRIBUTE_NOT_CONTENT_INDEXED
//	Bit 14 ("Encrypted"):          FILE_ATTRIBUTE_ENCRYPTED
//	Bit 15 ("IntegrityStream"):    FILE_ATTRIBUTE_INTEGRITY_STREAM
//	Bit 16 ("VirtualFile"):        FILE_ATTRIBUTE_VIRTUAL, reserved for system use
//	Bit 17 ("NoScrubData"):        FILE_ATTRIBUTE_NO_SCRUB_DATA
//	Bit 18 ("ExtendedAttributes"): FILE_ATTRIBUTE_EA, reserved for system use
//	Bit 19 ("Pinned"):             FILE_ATTRIBUTE_PINNED
//	Bit 20 ("Unpinned"):           FILE_ATTRIBUTE_UNPINNED
//	Bit 21 ("RecallOnOpen"):       FILE_ATTRIBUTE_RECALL_ON_OPEN
//	Bit 22 ("RecallOnDataAccess"): FILE_ATTRIBUTE_RECALL_ON_DATA_ACCESS
//	Bits 23-31:                    Not enumerated, ignored
type Attribute uint8

const (
	ReadOnly Attribute = iota
	Hidden
	System
	Directory
	Archive
	Device
	Normal
	Temporary
	Sparse
	ReparsePoint
	Compressed
	Offline
	NotContentIndexed
	Encrypted
	IntegrityStream
	VirtualFile
	NoScrubData
	ExtendedAttributes
	Pinned
	Unpinned
	RecallOnOpen
	RecallOnDataAccess
)

// Scope describes which part of an attribute set an attribute belongs to.
type Scope uint8

const (
	// ScopeKind attributes select the element kind (directory or file).
	ScopeKind Scope = iota
	// ScopeFile attributes only exist on files.
	ScopeFile
	// ScopeIndependent attributes apply to any element kind.
	ScopeIndependent
)

// Entry is a single row of the attribute table.
type Entry struct {
	Attribute Attribute
	Bit       uint8
	Name      string
	Scope     Scope
	// Reserved attributes are documented as being for system or internal use only.
	Reserved bool
}

// Mask returns the encoded bit of the entry.
func (e Entry) Mask() uint32 {
	return 1 << e.Bit
}

// Table holds every documented attribute ordered by bit position. The index of each entry equals its Attribute value.
var Table = [...]Entry{
	{ReadOnly, 0, "read-only", ScopeFile, false},
	{Hidden, 1, "hidden", ScopeIndependent, false},
	{System, 2, "system", ScopeIndependent, false},
	{Directory, 4, "directory", ScopeKind, false},
	{Archive, 5, "archive", ScopeKind, false},
	{Device, 6, "device", ScopeIndependent, true},
	{Normal, 7, "normal", ScopeFile, false},
	{Temporary, 8, "temporary", ScopeFile, false},
	{Sparse, 9, "sparse", ScopeFile, false},
	{ReparsePoint, 10, "reparse-point", ScopeIndependent, false},
	{Compressed, 11, "compressed", ScopeIndependent, false},
	{Offline, 12, "offline", ScopeFile, false},
	{NotContentIndexed, 13, "not-content-indexed", ScopeIndependent, false},
	{Encrypted, 14, "encrypted", ScopeIndependent, false},
	{IntegrityStream, 15, "integrity-stream", ScopeIndependent, false},
	{VirtualFile, 16, "virtual", ScopeIndependent, true},
	{NoScrubData, 17, "no-scrub-data", ScopeIndependent, false},
	{ExtendedAttributes, 18, "extended-attributes", ScopeIndependent, true},
	{Pinned, 19, "pinned", ScopeIndependent, false},
	{Unpinned, 20, "unpinned", ScopeIndependent, false},
	{RecallOnOpen, 21, "recall-on-open", ScopeIndependent, false},
	{RecallOnDataAccess, 22, "recall-on-data-access", ScopeIndependent, false},
}

// KnownMask has every documented bit set. Bit 3 and bits 23-31 are clear.
var KnownMask = func() uint32 {
	var m uint32
	for _, e := range Table {
		m |= e.Mask()
	}
	return m
}()

// Valid reports whether a is one of the enumerated attributes.
func (a Attribute) Valid() bool {
	return int(a) < len(Table)
}

// BitFor returns the bit index of the attribute in the 32-bit attribute word.
func BitFor(a Attribute) uint8 {
	return Table[a].Bit
}

// Mask returns the attribute's bit in the 32-bit attribute word.
func (a Attribute) Mask() uint32 {
	return Table[a].Mask()
}

// Scope returns the part of the attribute set the attribute belongs to.
func (a Attribute) Scope() Scope {
	return Table[a].Scope
}

// Reserved reports whether the attribute is documented as reserved for system use.
func (a Attribute) Reserved() bool {
	return Table[a].Reserved
}

func (a Attribute) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return Table[a].Name
}

// Lookup finds an attribute by its table name. Matching ignores case and treats '_' like '-'.
func Lookup(name string) (Attribute, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, e := range Table {
		if e.Name == name {
			return e.Attribute, true
		}
	}
	return 0, false
}

// All returns every attribute in bit order.
func All() []Attribute {
	all := make([]Attribute, 0, len(Table))
	for _, e := range Table {
		all = append(all, e.Attribute)
	}
	return all
}

// WithScope returns the attributes of the given scope in bit order.
func WithScope(s Scope) []Attribute {
	var out []Attribute
	for _, e := range Table {
		if e.Scope == s {
			out = append(out, e.Attribute)
		}
	}
	return out
}
