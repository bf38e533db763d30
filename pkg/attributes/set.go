package attributes

import (
	"fmt"
	"strings"

	"github.com/bgrewell/attr-kit/pkg/flags"
)

// ElementKind is either Directory or File. The two kinds are mutually exclusive, so an element can never be a
// directory and an archive at the same time.
type ElementKind interface {
	isElementKind()
	String() string
}

// Directory is the element kind of folders. Directories carry no file-only attributes.
type Directory struct{}

func (Directory) isElementKind() {}

func (Directory) String() string { return "directory" }

// File is the element kind of files (FILE_ATTRIBUTE_ARCHIVE) together with the attributes only files can have.
type File struct {
	FileAttributes
}

func (File) isElementKind() {}

func (File) String() string { return "file" }

// FileAttributes holds the attributes that are only meaningful on files.
//
//	Bit 0  ("ReadOnly"):  the file can be read but not written or deleted.
//	Bit 7  ("Normal"):    the file has no other attributes set.
//	Bit 8  ("Temporary"): the file is used for temporary storage.
//	Bit 9  ("Sparse"):    the file is a sparse file.
//	Bit 12 ("Offline"):   the file data is not available immediately.
type FileAttributes struct {
	ReadOnly  bool `json:"read_only"`
	Normal    bool `json:"normal"`
	Temporary bool `json:"temporary"`
	Sparse    bool `json:"sparse"`
	Offline   bool `json:"offline"`
}

var fileOnly = flags.WithScope(flags.ScopeFile)

func (fa FileAttributes) get(a flags.Attribute) bool {
	switch a {
	case flags.ReadOnly:
		return fa.ReadOnly
	case flags.Normal:
		return fa.Normal
	case flags.Temporary:
		return fa.Temporary
	case flags.Sparse:
		return fa.Sparse
	case flags.Offline:
		return fa.Offline
	}
	return false
}

func (fa *FileAttributes) set(a flags.Attribute, v bool) {
	switch a {
	case flags.ReadOnly:
		fa.ReadOnly = v
	case flags.Normal:
		fa.Normal = v
	case flags.Temporary:
		fa.Temporary = v
	case flags.Sparse:
		fa.Sparse = v
	case flags.Offline:
		fa.Offline = v
	}
}

// checkNormal verifies that no file attribute other than Normal is set.
func (fa FileAttributes) checkNormal() error {
	var conflicts []string
	for _, a := range fileOnly {
		if a != flags.Normal && fa.get(a) {
			conflicts = append(conflicts, a.String())
		}
	}
	if len(conflicts) == 0 {
		return nil
	}
	return &Error{
		Kind:   InvalidAttributeState,
		Detail: fmt.Sprintf("normal cannot be set while %s is set", strings.Join(conflicts, ", ")),
	}
}

// AttributeSet is the decoded form of a file attribute word. Create one with New, Decode or FromPath; the zero
// value is equal to New.
type AttributeSet struct {
	// kind is nil for a directory and a File value otherwise.
	kind ElementKind
	// independent holds the bits of every set ScopeIndependent attribute.
	independent uint32
}

// New returns a directory with no attributes set.
func New() AttributeSet {
	return AttributeSet{}
}

// Kind returns the element kind.
func (s AttributeSet) Kind() ElementKind {
	if s.kind == nil {
		return Directory{}
	}
	return s.kind
}

// IsDirectory reports whether the element is a directory.
func (s AttributeSet) IsDirectory() bool {
	_, ok := s.Kind().(Directory)
	return ok
}

// IsFile reports whether the element is a file (archive).
func (s AttributeSet) IsFile() bool {
	_, ok := s.Kind().(File)
	return ok
}

// ChangeKind replaces the element kind without any validation. It is the way to turn a set into a file with a
// specific bundle of file attributes. A nil kind selects Directory.
func (s *AttributeSet) ChangeKind(kind ElementKind) {
	s.kind = storedKind(kind)
}

// storedKind maps kind to its stored form: nil for any directory, a File value for any file. Pointer kinds are
// dereferenced and a nil *File selects Directory.
func storedKind(kind ElementKind) ElementKind {
	switch k := kind.(type) {
	case File:
		return k
	case *File:
		if k != nil {
			return *k
		}
	}
	return nil
}

func (s AttributeSet) fileAttribute(a flags.Attribute) (bool, error) {
	f, ok := s.Kind().(File)
	if !ok {
		return false, notAFile(a.String())
	}
	return f.get(a), nil
}

func (s *AttributeSet) setFileAttribute(a flags.Attribute, v bool) error {
	f, ok := s.Kind().(File)
	if !ok {
		return notAFile(a.String())
	}
	if a == flags.Normal {
		if v {
			if err := f.checkNormal(); err != nil {
				return err
			}
		}
	} else if v {
		// "has no attributes" and "has this attribute" cannot both hold
		f.Normal = false
	}
	f.set(a, v)
	s.kind = f
	return nil
}

func (s AttributeSet) flag(a flags.Attribute) bool {
	return s.independent&a.Mask() != 0
}

func (s *AttributeSet) setFlag(a flags.Attribute, v bool) {
	if v {
		s.independent |= a.Mask()
	} else {
		s.independent &^= a.Mask()
	}
}

// ReadOnly reports whether the file is read-only. Not available on directories.
func (s AttributeSet) ReadOnly() (bool, error) {
	return s.fileAttribute(flags.ReadOnly)
}

// SetReadOnly changes the read-only state. Setting it clears Normal. Not available on directories.
func (s *AttributeSet) SetReadOnly(v bool) error {
	return s.setFileAttribute(flags.ReadOnly, v)
}

// Normal reports whether the file has no other attributes. Not available on directories.
func (s AttributeSet) Normal() (bool, error) {
	return s.fileAttribute(flags.Normal)
}

// SetNormal changes the normal state. Setting it to true fails with InvalidAttributeState while read-only,
// temporary, sparse or offline is set. Not available on directories.
func (s *AttributeSet) SetNormal(v bool) error {
	return s.setFileAttribute(flags.Normal, v)
}

// Temporary reports whether the file is used for temporary storage. Not available on directories.
func (s AttributeSet) Temporary() (bool, error) {
	return s.fileAttribute(flags.Temporary)
}

// SetTemporary changes the temporary state. Setting it clears Normal. Not available on directories.
func (s *AttributeSet) SetTemporary(v bool) error {
	return s.setFileAttribute(flags.Temporary, v)
}

// Sparse reports whether the file is a sparse file. Not available on directories.
func (s AttributeSet) Sparse() (bool, error) {
	return s.fileAttribute(flags.Sparse)
}

// SetSparse changes the sparse state. Setting it clears Normal. Not available on directories.
func (s *AttributeSet) SetSparse(v bool) error {
	return s.setFileAttribute(flags.Sparse, v)
}

// Offline reports whether the file data is not available immediately. Not available on directories.
func (s AttributeSet) Offline() (bool, error) {
	return s.fileAttribute(flags.Offline)
}

// SetOffline changes the offline state. Applications should not change it arbitrarily. Setting it clears Normal.
// Not available on directories.
func (s *AttributeSet) SetOffline(v bool) error {
	return s.setFileAttribute(flags.Offline, v)
}

// Hidden reports whether the element is hidden from ordinary directory listings.
func (s AttributeSet) Hidden() bool { return s.flag(flags.Hidden) }

func (s *AttributeSet) SetHidden(v bool) { s.setFlag(flags.Hidden, v) }

// System reports whether the element is used by the operating system.
func (s AttributeSet) System() bool { return s.flag(flags.System) }

func (s *AttributeSet) SetSystem(v bool) { s.setFlag(flags.System, v) }

// Device reports whether the element is a device. Reserved for system use.
func (s AttributeSet) Device() bool { return s.flag(flags.Device) }

// SetDevice changes the device state. The attribute is reserved for system use; the setter exists so decoded
// values can be rebuilt by hand.
func (s *AttributeSet) SetDevice(v bool) { s.setFlag(flags.Device, v) }

// ReparsePoint reports whether the element redirects access elsewhere, e.g. a symbolic link.
func (s AttributeSet) ReparsePoint() bool { return s.flag(flags.ReparsePoint) }

func (s *AttributeSet) SetReparsePoint(v bool) { s.setFlag(flags.ReparsePoint, v) }

// Compressed reports whether the element is compressed. For a directory it means new children are compressed.
func (s AttributeSet) Compressed() bool { return s.flag(flags.Compressed) }

func (s *AttributeSet) SetCompressed(v bool) { s.setFlag(flags.Compressed, v) }

// NotContentIndexed reports whether the content indexing service skips the element.
func (s AttributeSet) NotContentIndexed() bool { return s.flag(flags.NotContentIndexed) }

func (s *AttributeSet) SetNotContentIndexed(v bool) { s.setFlag(flags.NotContentIndexed, v) }

// Encrypted reports whether the element is encrypted.
func (s AttributeSet) Encrypted() bool { return s.flag(flags.Encrypted) }

func (s *AttributeSet) SetEncrypted(v bool) { s.setFlag(flags.Encrypted, v) }

// IntegrityStream reports whether the element is configured with integrity (ReFS).
func (s AttributeSet) IntegrityStream() bool { return s.flag(flags.IntegrityStream) }

func (s *AttributeSet) SetIntegrityStream(v bool) { s.setFlag(flags.IntegrityStream, v) }

// VirtualFile reports the virtual attribute. Reserved for system use.
func (s AttributeSet) VirtualFile() bool { return s.flag(flags.VirtualFile) }

// SetVirtualFile changes the virtual state. The attribute is reserved for system use.
func (s *AttributeSet) SetVirtualFile(v bool) { s.setFlag(flags.VirtualFile, v) }

// NoScrubData reports whether the background integrity scanner skips the element.
func (s AttributeSet) NoScrubData() bool { return s.flag(flags.NoScrubData) }

func (s *AttributeSet) SetNoScrubData(v bool) { s.setFlag(flags.NoScrubData, v) }

// ExtendedAttributes reports whether the element has extended attributes. Reserved for internal use.
func (s AttributeSet) ExtendedAttributes() bool { return s.flag(flags.ExtendedAttributes) }

// SetExtendedAttributes changes the extended attributes state. The attribute is reserved for internal use.
func (s *AttributeSet) SetExtendedAttributes(v bool) { s.setFlag(flags.ExtendedAttributes, v) }

// Pinned reports whether the element should be kept fully present locally even when not accessed.
func (s AttributeSet) Pinned() bool { return s.flag(flags.Pinned) }

func (s *AttributeSet) SetPinned(v bool) { s.setFlag(flags.Pinned, v) }

// Unpinned reports whether the element should not be kept present locally except while accessed.
func (s AttributeSet) Unpinned() bool { return s.flag(flags.Unpinned) }

func (s *AttributeSet) SetUnpinned(v bool) { s.setFlag(flags.Unpinned, v) }

// RecallOnOpen reports whether the element has no local physical representation, e.g. a file in remote storage.
func (s AttributeSet) RecallOnOpen() bool { return s.flag(flags.RecallOnOpen) }

func (s *AttributeSet) SetRecallOnOpen(v bool) { s.setFlag(flags.RecallOnOpen, v) }

// RecallOnDataAccess reports whether the element is not fully present locally.
func (s AttributeSet) RecallOnDataAccess() bool { return s.flag(flags.RecallOnDataAccess) }

func (s *AttributeSet) SetRecallOnDataAccess(v bool) { s.setFlag(flags.RecallOnDataAccess, v) }

// Get returns the state of any attribute. File-only attributes fail with NotAFile on directories.
func (s AttributeSet) Get(a flags.Attribute) (bool, error) {
	if !a.Valid() {
		return false, &Error{Kind: InvalidAttributeState, Detail: fmt.Sprintf("unknown attribute %d", a)}
	}
	switch a.Scope() {
	case flags.ScopeKind:
		if a == flags.Directory {
			return s.IsDirectory(), nil
		}
		return s.IsFile(), nil
	case flags.ScopeFile:
		return s.fileAttribute(a)
	default:
		return s.flag(a), nil
	}
}

// Set changes any attribute with the same rules as the named setters. The directory and archive attributes can
// only be set to the state they already have; switching kinds fails with ConflictingFlags, use ChangeKind instead.
func (s *AttributeSet) Set(a flags.Attribute, v bool) error {
	if !a.Valid() {
		return &Error{Kind: InvalidAttributeState, Detail: fmt.Sprintf("unknown attribute %d", a)}
	}
	switch a.Scope() {
	case flags.ScopeKind:
		current, _ := s.Get(a)
		if current != v {
			return &Error{
				Kind:   ConflictingFlags,
				Detail: fmt.Sprintf("cannot set %s to %t on a %s", a, v, s.Kind()),
			}
		}
		return nil
	case flags.ScopeFile:
		return s.setFileAttribute(a, v)
	default:
		s.setFlag(a, v)
		return nil
	}
}

// Attributes lists every set attribute in bit order, including the kind attribute.
func (s AttributeSet) Attributes() []flags.Attribute {
	var out []flags.Attribute
	for _, a := range flags.All() {
		if ok, _ := s.Get(a); ok {
			out = append(out, a)
		}
	}
	return out
}
