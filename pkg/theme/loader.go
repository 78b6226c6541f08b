package theme

import (
	"errors"
	"fmt"
	"os"
	"slices"
)

// Load reads a palette file. The parser is picked by file extension.
// Entries inherit missing colors from DefaultPalette and severities absent
// from the file keep their default colors.
func Load(path string) (Palette, error) {
	parser, ok := parserFor(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	return Parse(parser, data)
}

// Parse decodes data with parser and validates the result.
func Parse(parser Parser, data []byte) (Palette, error) {
	raw, err := parser.Parse(data)
	if err != nil {
		return nil, errors.Join(ErrParseFile, err)
	}
	return FromMap(raw)
}

// FromMap validates raw and merges it over DefaultPalette.
func FromMap(raw map[string]Colors) (Palette, error) {
	return Merge(DefaultPalette(), raw)
}

// Merge validates raw and merges it over a copy of base, or over
// DefaultPalette when base is empty. Keys are normalized, so "error" updates
// danger; fields left empty keep the base value.
func Merge(base Palette, raw map[string]Colors) (Palette, error) {
	palette := base.Clone()
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	for key, colors := range raw {
		severity := normalize(key)
		if !slices.Contains(Severities, severity) {
			return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidPalette, key)
		}
		for _, c := range []string{colors.Title, colors.Description, colors.Icon} {
			if c != "" && !IsColor(c) {
				return nil, fmt.Errorf("%w: %q is not a color (severity %q)", ErrInvalidPalette, c, key)
			}
		}
		palette[severity] = colors.Merge(palette[severity])
	}
	return palette, nil
}
