package theme

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Parser decodes a palette file.
type Parser interface {
	// Parse decodes raw file content into colors keyed by severity name.
	// Keys are returned as written; validation happens in Load.
	Parse(data []byte) (map[string]Colors, error)

	// SupportsFileExtension reports whether the parser handles ext (with or without the dot).
	SupportsFileExtension(ext string) bool
}

type paletteFile struct {
	Colors map[string]Colors `yaml:"colors" toml:"colors"`
}

// YAMLParser reads .yaml and .yml palette files.
type YAMLParser struct{}

func (YAMLParser) Parse(data []byte) (map[string]Colors, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Colors, nil
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// TOMLParser reads .toml palette files.
type TOMLParser struct{}

func (TOMLParser) Parse(data []byte) (map[string]Colors, error) {
	var f paletteFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, err
	}
	return f.Colors, nil
}

func (TOMLParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "toml")
}

var parsers = []Parser{YAMLParser{}, TOMLParser{}}

func parserFor(path string) (Parser, bool) {
	ext := filepath.Ext(path)
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p, true
		}
	}
	return nil, false
}
