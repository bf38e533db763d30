package attributes

// RawAttributeReader is the host metadata accessor: it returns the raw attribute word of the element at path.
type RawAttributeReader interface {
	RawAttributes(path string) (uint32, error)
}

// RawAttributeReaderFunc adapts a function to RawAttributeReader.
type RawAttributeReaderFunc func(path string) (uint32, error)

func (f RawAttributeReaderFunc) RawAttributes(path string) (uint32, error) {
	return f(path)
}

// FromPath reads the attribute word of path through r and decodes it. Any failure of the reader is reported as
// FileNotFound with the reader's error as the cause.
func FromPath(r RawAttributeReader, path string) (AttributeSet, error) {
	raw, err := readRaw(r, path)
	if err != nil {
		return AttributeSet{}, err
	}
	return Decode(raw), nil
}

// FromPathStrict is FromPath with DecodeStrict in place of Decode.
func FromPathStrict(r RawAttributeReader, path string) (AttributeSet, error) {
	raw, err := readRaw(r, path)
	if err != nil {
		return AttributeSet{}, err
	}
	return DecodeStrict(raw)
}

func readRaw(r RawAttributeReader, path string) (uint32, error) {
	if r == nil {
		return 0, &Error{Kind: FileNotFound, Detail: path + ": no metadata reader"}
	}
	raw, err := r.RawAttributes(path)
	if err != nil {
		return 0, &Error{Kind: FileNotFound, Detail: path, Err: err}
	}
	return raw, nil
}
