package attrkit

import (
	"fmt"

	"github.com/bgrewell/attr-kit/pkg/attributes"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/bgrewell/attr-kit/pkg/metadata"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/go-logr/logr"
)

// Open reads the attributes of the file or directory at path
func Open(path string, opts ...options.Option) (attributes.AttributeSet, error) {
	// Set default options
	options := options.Options{
		Logger: logr.Discard(),
	}

	// Apply options
	for _, opt := range opts {
		opt(&options)
	}

	log := logging.NewLogger(options.Logger).WithName("attrkit")

	reader := options.Reader
	if reader == nil {
		if options.Fs != nil {
			reader = metadata.NewFsReader(options.Fs, log)
		} else {
			reader = metadata.Host(log)
		}
	}

	read := attributes.FromPath
	if options.Strict {
		read = attributes.FromPathStrict
	}

	s, err := read(reader, path)
	if err != nil {
		log.Debug("failed to read attributes", "path", path, "error", err)
		return attributes.AttributeSet{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	log.Debug("decoded attributes", "path", path, "raw", logging.Raw(s.Encode()), "attributes", s.String())
	return s, nil
}

// Decode converts a raw attribute word into an AttributeSet
func Decode(raw uint32) attributes.AttributeSet {
	return attributes.Decode(raw)
}

// Encode converts an AttributeSet back into a raw attribute word
func Encode(s attributes.AttributeSet) uint32 {
	return s.Encode()
}
