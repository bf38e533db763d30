package attributes_test

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	attrtest "github.com/bgrewell/attr-kit/internal/testing"
	"github.com/bgrewell/attr-kit/pkg/attributes"
	"github.com/bgrewell/attr-kit/pkg/flags"
	"github.com/bgrewell/attr-kit/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(attrs []flags.Attribute) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a.String())
	}
	return out
}

func TestDecodeGolden(t *testing.T) {
	entries, err := attrtest.LoadGolden(filepath.Join("testdata", "golden.json"))
	require.NoError(t, err)
	dirs, files := attrtest.CountKinds(entries)
	require.NotZero(t, dirs)
	require.NotZero(t, files)

	for _, e := range entries {
		t.Run(e.Name, func(t *testing.T) {
			s := attributes.Decode(e.Raw)
			assert.Equal(t, e.Kind, s.Kind().String())
			assert.Equal(t, e.Rendered, s.String())
			assert.Equal(t, e.Attributes, names(s.Attributes()))
			assert.Equal(t, e.Encoded, s.Encode())
			assert.Zero(t, s.Encode()&^flags.KnownMask, "encode must not set reserved bits")
			assert.Equal(t, s, attributes.Decode(s.Encode()))
		})
	}
}

func TestDecodeBitIsolation(t *testing.T) {
	for _, a := range flags.All() {
		t.Run(a.String(), func(t *testing.T) {
			s := attributes.Decode(1 << flags.BitFor(a))

			var want []flags.Attribute
			switch {
			case a == flags.Directory || a == flags.Archive:
				want = []flags.Attribute{a}
			case flags.BitFor(a) < flags.BitFor(flags.Archive):
				want = []flags.Attribute{a, flags.Archive}
			default:
				want = []flags.Attribute{flags.Archive, a}
			}
			assert.Equal(t, want, s.Attributes())

			got, err := s.Get(a)
			require.NoError(t, err)
			assert.True(t, got)
		})
	}
}

func TestDecodeDirectoryWinsOverArchive(t *testing.T) {
	for _, raw := range []uint32{0x10, 0x30, 0x31, 0x1391, 0xFFFFFFFF} {
		s := attributes.Decode(raw)
		assert.True(t, s.IsDirectory(), "0x%08X", raw)
		assert.False(t, s.IsFile(), "0x%08X", raw)
		_, err := s.ReadOnly()
		assert.True(t, errors.Is(err, attributes.ErrNotAFile))
	}
}

func TestDecodeIgnoresUnknownBits(t *testing.T) {
	base := attributes.Decode(0x22)
	for _, extra := range []uint32{1 << 3, 1 << 23, 1 << 31, 0xFF800008} {
		s := attributes.Decode(0x22 | extra)
		assert.Equal(t, base, s)
		assert.Equal(t, uint32(0x22), s.Encode())
	}
}

func TestDecodeFileAttributes(t *testing.T) {
	s := attributes.Decode(0x1321) // archive, read-only, temporary, sparse, offline
	f, ok := s.Kind().(attributes.File)
	require.True(t, ok)
	assert.Equal(t, attributes.FileAttributes{
		ReadOnly:  true,
		Temporary: true,
		Sparse:    true,
		Offline:   true,
	}, f.FileAttributes)
}

func TestRoundTripThroughSetters(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	all := flags.All()
	for i := 0; i < 500; i++ {
		s := attributes.New()
		if r.Intn(2) == 0 {
			s.ChangeKind(attributes.File{})
		}
		for j := 0; j < 10; j++ {
			a := all[r.Intn(len(all))]
			_ = s.Set(a, r.Intn(2) == 0)
		}
		require.Equal(t, s, attributes.Decode(s.Encode()), "iteration %d: %s", i, s)
		require.True(t, validation.ValidAttributeColumn(s.String()), "iteration %d: %s", i, s)
	}
}

func TestEncodeKinds(t *testing.T) {
	assert.Equal(t, uint32(0x10), attributes.New().Encode())

	var zero attributes.AttributeSet
	assert.Equal(t, uint32(0x10), zero.Encode())

	s := attributes.New()
	s.ChangeKind(attributes.File{})
	assert.Equal(t, uint32(0x20), s.Encode())

	s.ChangeKind(attributes.File{FileAttributes: attributes.FileAttributes{Normal: true}})
	assert.Equal(t, uint32(0xA0), s.Encode())
}

func TestDecodeStrict(t *testing.T) {
	t.Run("DirectoryAndArchive", func(t *testing.T) {
		_, err := attributes.DecodeStrict(0x30)
		require.Error(t, err)
		assert.True(t, errors.Is(err, attributes.ErrConflictingFlags))
		assert.Contains(t, err.Error(), "0x00000030")
	})

	t.Run("NormalWithReadOnly", func(t *testing.T) {
		_, err := attributes.DecodeStrict(0xA1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, attributes.ErrInvalidAttributeState))
		assert.Contains(t, err.Error(), "read-only")
	})

	t.Run("NormalFile", func(t *testing.T) {
		s, err := attributes.DecodeStrict(0x80)
		require.NoError(t, err)
		normal, err := s.Normal()
		require.NoError(t, err)
		assert.True(t, normal)
	})

	t.Run("DirectoryIgnoresFileBits", func(t *testing.T) {
		s, err := attributes.DecodeStrict(0x91)
		require.NoError(t, err)
		assert.True(t, s.IsDirectory())
		assert.Equal(t, attributes.Decode(0x91), s)
	})
}
