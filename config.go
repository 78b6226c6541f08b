package alertbox

import (
	"errors"

	"github.com/dmitrymomot/alertbox/pkg/alert"
	"github.com/dmitrymomot/alertbox/pkg/theme"
)

// Config holds the environment settings of the plugin.
type Config struct {
	Enabled    bool     `env:"ALERTBOX_ENABLED" envDefault:"true"`
	ThemeFile  string   `env:"ALERTBOX_THEME_FILE"`
	WatchTheme bool     `env:"ALERTBOX_WATCH_THEME" envDefault:"false"`
	Positions  []string `env:"ALERTBOX_POSITIONS" envSeparator:","`
}

// NewFromConfig creates a plugin from cfg. The theme file, if set, is loaded
// before opts are applied; watching it is left to the caller.
func NewFromConfig(cfg Config, opts ...Option) (*Plugin, error) {
	base := make([]Option, 0, 2)

	if cfg.ThemeFile != "" {
		palette, err := theme.Load(cfg.ThemeFile)
		if err != nil {
			return nil, errors.Join(ErrLoadTheme, err)
		}
		base = append(base, WithColorStore(theme.NewStore(palette)))
	}

	positions := cfg.Positions
	if len(positions) == 0 {
		positions = alert.Positions()
	}
	base = append(base, WithPositions(positions...))

	p := New(append(base, opts...)...)
	p.Enabled(cfg.Enabled)
	return p, nil
}
