package metadata_test

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/bgrewell/attr-kit/pkg/attributes"
	"github.com/bgrewell/attr-kit/pkg/metadata"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

func newTree(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/data/.config", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/data/plain.txt", []byte("plain"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/data/.hidden", []byte("hidden"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/data/locked.txt", []byte("locked"), 0o644))
	require.NoError(t, fsys.Chmod("/data/locked.txt", 0o444))
	return fsys
}

func TestFsReader(t *testing.T) {
	r := metadata.NewFsReader(newTree(t), nil)

	tests := []struct {
		path string
		raw  uint32
	}{
		{"/data", 0x10},
		{"/data/.config", 0x12},
		{"/data/plain.txt", 0x20},
		{"/data/.hidden", 0x22},
		{"/data/locked.txt", 0x21},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			raw, err := r.RawAttributes(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, raw)
		})
	}
}

func TestFsReaderMissing(t *testing.T) {
	r := metadata.NewFsReader(newTree(t), nil)
	_, err := r.RawAttributes("/data/missing.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "/data/missing.txt")
}

func TestFsReaderWithFromPath(t *testing.T) {
	r := metadata.NewFsReader(newTree(t), nil)

	s, err := attributes.FromPath(r, "/data/locked.txt")
	require.NoError(t, err)
	assert.Equal(t, "-ar---", s.String())

	s, err = attributes.FromPath(r, "/data/.config")
	require.NoError(t, err)
	assert.Equal(t, "d--h--", s.String())

	_, err = attributes.FromPath(r, "/nope")
	assert.True(t, errors.Is(err, attributes.ErrFileNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFromFileInfo(t *testing.T) {
	tests := []struct {
		name string
		info fakeInfo
		raw  uint32
	}{
		{"Regular", fakeInfo{"a.txt", 0o644}, 0x20},
		{"ReadOnly", fakeInfo{"a.txt", 0o444}, 0x21},
		{"Directory", fakeInfo{"dir", fs.ModeDir | 0o755}, 0x10},
		{"ReadOnlyDirectory", fakeInfo{"dir", fs.ModeDir | 0o555}, 0x10},
		{"HiddenFile", fakeInfo{".profile", 0o644}, 0x22},
		{"DotEntry", fakeInfo{".", fs.ModeDir | 0o755}, 0x10},
		{"Symlink", fakeInfo{"link", fs.ModeSymlink | 0o777}, 0x420},
		{"Device", fakeInfo{"sda", fs.ModeDevice | 0o660}, 0x60},
		{"Temporary", fakeInfo{"scratch", fs.ModeTemporary | 0o600}, 0x120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.raw, metadata.FromFileInfo(tt.info))
		})
	}
}
