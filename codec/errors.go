package codec

import "errors"

var (
	// ErrInvalidMagic is returned when the input does not start with the vector magic.
	ErrInvalidMagic = errors.New("codec: invalid magic")

	// ErrUnsupportedVersion is returned for headers written by an unknown format version.
	ErrUnsupportedVersion = errors.New("codec: unsupported version")

	// ErrTruncated is returned when the input ends before the encoded vector does.
	ErrTruncated = errors.New("codec: truncated input")

	// ErrCorrupt is returned when header fields and block contents disagree.
	ErrCorrupt = errors.New("codec: corrupt input")
)
