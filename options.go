package alertbox

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/alertbox/pkg/render"
	"github.com/dmitrymomot/alertbox/pkg/theme"
)

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the plugin logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithPositions replaces the positions the plugin registers hooks for.
// Blank and duplicate entries are dropped.
func WithPositions(positions ...string) Option {
	return func(p *Plugin) {
		seen := make(map[string]struct{}, len(positions))
		out := make([]string, 0, len(positions))
		for _, pos := range positions {
			pos = strings.TrimSpace(pos)
			if pos == "" {
				continue
			}
			if _, ok := seen[pos]; ok {
				continue
			}
			seen[pos] = struct{}{}
			out = append(out, pos)
		}
		if len(out) > 0 {
			p.positions = out
		}
	}
}

// WithPalette merges palette over the plugin colors once all options are
// applied. An invalid palette is logged and skipped.
func WithPalette(palette theme.Palette) Option {
	return func(p *Plugin) {
		p.palettes = append(p.palettes, palette)
	}
}

// WithColorStore shares an existing store, for example one updated by theme.Watch.
func WithColorStore(s *theme.Store) Option {
	return func(p *Plugin) {
		if s != nil {
			p.colors = s
		}
	}
}

// WithIconResolver sets the resolver used to draw alert icons.
func WithIconResolver(r render.IconResolver) Option {
	return func(p *Plugin) {
		if r != nil {
			p.renderOpts = append(p.renderOpts, render.WithIconResolver(r))
		}
	}
}
