package theme

import "errors"

var (
	// ErrInvalidPalette is returned when a palette file contains an unknown
	// severity or a value that is not a CSS color.
	ErrInvalidPalette = errors.New("invalid palette")

	// ErrUnsupportedFormat is returned when no parser handles the file extension.
	ErrUnsupportedFormat = errors.New("unsupported palette file format")

	// ErrReadFile is returned when the palette file cannot be read.
	ErrReadFile = errors.New("failed to read palette file")

	// ErrParseFile is returned when the palette file cannot be decoded.
	ErrParseFile = errors.New("failed to parse palette file")
)
