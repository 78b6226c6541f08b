package theme

import (
	"regexp"
	"strings"
	"sync/atomic"
)

// Severity names used as palette keys.
const (
	Info    = "info"
	Success = "success"
	Warning = "warning"
	Danger  = "danger"
)

// Severities lists palette keys in display order.
var Severities = []string{Info, Success, Warning, Danger}

// Colors holds the three colors applied to an alert.
type Colors struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Icon        string `yaml:"icon" toml:"icon" json:"icon"`
}

// Merge returns c with every empty field taken from fallback.
func (c Colors) Merge(fallback Colors) Colors {
	if c.Title == "" {
		c.Title = fallback.Title
	}
	if c.Description == "" {
		c.Description = fallback.Description
	}
	if c.Icon == "" {
		c.Icon = fallback.Icon
	}
	return c
}

// Palette maps a severity name to its colors.
type Palette map[string]Colors

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Success: {Title: "#047857", Description: "#10b981", Icon: "#10b981"},
		Danger:  {Title: "#b91c1c", Description: "#ef4444", Icon: "#ef4444"},
		Warning: {Title: "#b45309", Description: "#f59e0b", Icon: "#f59e0b"},
		Info:    {Title: "#1d4ed8", Description: "#3b82f6", Icon: "#3b82f6"},
	}
}

// Lookup returns the colors for severity. "error" is looked up as "danger".
func (p Palette) Lookup(severity string) (Colors, bool) {
	if p == nil {
		return Colors{}, false
	}
	c, ok := p[normalize(severity)]
	return c, ok
}

// Clone returns a copy of p.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func normalize(severity string) string {
	severity = strings.ToLower(strings.TrimSpace(severity))
	if severity == "error" {
		return Danger
	}
	return severity
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|rgb|hsl|[a-zA-Z]+)`)

// IsColor reports whether s looks like a CSS color: a hex value, an
// rgb/rgba/hsl/hsla function, or an alphabetic token taken as a color name.
// Only the prefix is checked and color names are not verified.
func IsColor(s string) bool {
	return s != "" && colorPattern.MatchString(s)
}

// Store holds the active palette. It is safe for concurrent use.
type Store struct {
	palette atomic.Pointer[Palette]
}

// NewStore returns a store holding p. A nil palette falls back to DefaultPalette.
func NewStore(p Palette) *Store {
	s := &Store{}
	s.Set(p)
	return s
}

// Set replaces the active palette.
func (s *Store) Set(p Palette) {
	if p == nil {
		p = DefaultPalette()
	}
	p = p.Clone()
	s.palette.Store(&p)
}

// Palette returns a copy of the active palette.
func (s *Store) Palette() Palette {
	return (*s.palette.Load()).Clone()
}

// Lookup returns the active colors for severity.
func (s *Store) Lookup(severity string) (Colors, bool) {
	return (*s.palette.Load()).Lookup(severity)
}
