package attributes

import (
	"fmt"

	"github.com/bgrewell/attr-kit/pkg/flags"
)

// Decode converts a raw attribute word, as returned by GetFileAttributes, into an AttributeSet. It never fails:
// reserved and unknown bits are dropped. When the directory bit is set the element is a directory and the archive
// bit and every file-only bit are ignored. Otherwise the element is a file.
func Decode(raw uint32) AttributeSet {
	var s AttributeSet
	var fa FileAttributes
	for _, e := range flags.Table {
		if raw&e.Mask() == 0 {
			continue
		}
		switch e.Scope {
		case flags.ScopeFile:
			fa.set(e.Attribute, true)
		case flags.ScopeIndependent:
			s.independent |= e.Mask()
		}
	}

	if raw&flags.Directory.Mask() == 0 {
		s.kind = File{fa}
	}
	return s
}

// DecodeStrict is Decode for callers that want malformed words rejected instead of repaired. It fails with
// ConflictingFlags when both the directory and archive bits are set, and with InvalidAttributeState when a file
// has the normal bit combined with another file attribute.
func DecodeStrict(raw uint32) (AttributeSet, error) {
	both := flags.Directory.Mask() | flags.Archive.Mask()
	if raw&both == both {
		return AttributeSet{}, &Error{
			Kind:   ConflictingFlags,
			Detail: fmt.Sprintf("directory and archive bits are both set in 0x%08X", raw),
		}
	}

	s := Decode(raw)
	if f, ok := s.kind.(File); ok && f.Normal {
		if err := f.checkNormal(); err != nil {
			return AttributeSet{}, err
		}
	}
	return s, nil
}

// Encode converts the set back into a raw attribute word. Directories set bit 4, files set bit 5 plus their file
// attributes. Reserved and unknown bits are always zero.
func (s AttributeSet) Encode() uint32 {
	raw := s.independent & flags.KnownMask
	switch k := s.Kind().(type) {
	case File:
		raw |= flags.Archive.Mask()
		for _, a := range fileOnly {
			if k.get(a) {
				raw |= a.Mask()
			}
		}
	default:
		raw |= flags.Directory.Mask()
	}
	return raw
}
