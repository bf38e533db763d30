package options

import (
	"github.com/bgrewell/attr-kit/pkg/attributes"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

// Options represents the options for reading attributes from a path
type Options struct {
	Logger logr.Logger
	Reader attributes.RawAttributeReader
	Fs     afero.Fs
	Strict bool
}

// Option represents a function that modifies the Options
type Option func(*Options)

// WithLogger sets the Logger used while reading attributes
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithReader sets the metadata reader. It takes precedence over WithFs.
func WithReader(reader attributes.RawAttributeReader) Option {
	return func(o *Options) {
		o.Reader = reader
	}
}

// WithFs reads attributes through fsys instead of the host filesystem. Unless fsys carries native Windows
// attribute data the word is derived from the file mode.
func WithFs(fsys afero.Fs) Option {
	return func(o *Options) {
		o.Fs = fsys
	}
}

// WithStrict sets whether malformed attribute words are rejected instead of repaired. With strict enabled a word
// with both the directory and archive bits, or a normal file with other file attributes, is an error.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}
