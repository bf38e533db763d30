package flags

import (
	"testing"

	"github.com/bgrewell/attr-kit/pkg/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIndexMatchesAttribute(t *testing.T) {
	for i, e := range Table {
		require.Equal(t, Attribute(i), e.Attribute, "table row %d (%s) out of order", i, e.Name)
	}
}

func TestBitFor(t *testing.T) {
	tests := []struct {
		attr Attribute
		bit  uint8
	}{
		{ReadOnly, 0},
		{Hidden, 1},
		{System, 2},
		{Directory, 4},
		{Archive, 5},
		{Device, 6},
		{Normal, 7},
		{Temporary, 8},
		{Sparse, 9},
		{ReparsePoint, 10},
		{Compressed, 11},
		{Offline, 12},
		{NotContentIndexed, 13},
		{Encrypted, 14},
		{IntegrityStream, 15},
		{VirtualFile, 16},
		{NoScrubData, 17},
		{ExtendedAttributes, 18},
		{Pinned, 19},
		{Unpinned, 20},
		{RecallOnOpen, 21},
		{RecallOnDataAccess, 22},
	}
	require.Len(t, tests, len(Table))
	for _, tt := range tests {
		t.Run(tt.attr.String(), func(t *testing.T) {
			assert.Equal(t, tt.bit, BitFor(tt.attr))
			assert.Equal(t, uint32(1)<<tt.bit, tt.attr.Mask())
		})
	}
}

func TestNoSharedBits(t *testing.T) {
	var seen uint32
	for _, e := range Table {
		require.Zero(t, seen&e.Mask(), "bit %d used twice", e.Bit)
		seen |= e.Mask()
	}
	assert.Equal(t, KnownMask, seen)
}

func TestKnownMask(t *testing.T) {
	assert.Equal(t, uint32(0x007FFFF7), KnownMask)
	assert.Zero(t, KnownMask&(1<<3), "bit 3 is reserved")
	assert.Zero(t, KnownMask>>(consts.ATTR_HIGHEST_BIT+1), "bits above the highest documented bit are not enumerated")
	assert.Equal(t, uint8(consts.ATTR_HIGHEST_BIT), BitFor(RecallOnDataAccess))
}

func TestScopes(t *testing.T) {
	assert.Equal(t, []Attribute{Directory, Archive}, WithScope(ScopeKind))
	assert.Equal(t, []Attribute{ReadOnly, Normal, Temporary, Sparse, Offline}, WithScope(ScopeFile))
	assert.Len(t, WithScope(ScopeIndependent), 15)
}

func TestReserved(t *testing.T) {
	var reserved []Attribute
	for _, a := range All() {
		if a.Reserved() {
			reserved = append(reserved, a)
		}
	}
	assert.Equal(t, []Attribute{Device, VirtualFile, ExtendedAttributes}, reserved)
}

func TestLookup(t *testing.T) {
	a, ok := Lookup("reparse-point")
	require.True(t, ok)
	assert.Equal(t, ReparsePoint, a)

	a, ok = Lookup(" Not_Content_Indexed ")
	require.True(t, ok)
	assert.Equal(t, NotContentIndexed, a)

	_, ok = Lookup("volume")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "read-only", ReadOnly.String())
	assert.Equal(t, "recall-on-data-access", RecallOnDataAccess.String())
	assert.Equal(t, "unknown", Attribute(200).String())
	assert.False(t, Attribute(200).Valid())
}
