package alertbox

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/alertbox/pkg/alert"
	"github.com/dmitrymomot/alertbox/pkg/logger"
	"github.com/dmitrymomot/alertbox/pkg/render"
	"github.com/dmitrymomot/alertbox/pkg/theme"
)

// ID identifies the plugin to a host panel.
const ID = "alert-box"

// Plugin renders queued alerts at page positions.
type Plugin struct {
	enabled    atomic.Bool
	positions  []string
	palettes   []theme.Palette
	colors     *theme.Store
	renderOpts []render.Option
	logger     *slog.Logger
}

// New creates an enabled plugin serving alert.Positions with the default palette.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		positions: alert.Positions(),
		colors:    theme.NewStore(nil),
		logger:    slog.Default(),
	}
	p.enabled.Store(true)

	for _, opt := range opts {
		opt(p)
	}

	p.logger = p.logger.With(logger.Component("alertbox"))

	for _, palette := range p.palettes {
		if err := p.DefineColors(palette); err != nil {
			p.logger.Warn("ignoring invalid palette", logger.Error(err))
		}
	}
	p.palettes = nil
	return p
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string {
	return ID
}

// Enabled turns the plugin on or off.
func (p *Plugin) Enabled(enabled bool) *Plugin {
	p.enabled.Store(enabled)
	return p
}

// Disable is the inverse of Enabled.
func (p *Plugin) Disable(disabled bool) *Plugin {
	return p.Enabled(!disabled)
}

// IsEnabled reports whether hooks render anything.
func (p *Plugin) IsEnabled() bool {
	return p.enabled.Load()
}

// DefineColors validates palette and merges it over the current colors.
// Keys are severity names ("error" updates danger); fields left empty keep
// their current value. On error the current colors are unchanged.
func (p *Plugin) DefineColors(palette theme.Palette) error {
	if len(palette) == 0 {
		return nil
	}
	merged, err := theme.Merge(p.colors.Palette(), palette)
	if err != nil {
		return err
	}
	p.colors.Set(merged)
	return nil
}

// Colors returns the palette store used by registries created by Middleware.
func (p *Plugin) Colors() *theme.Store {
	return p.colors
}

// Positions returns the positions the plugin registers hooks for.
func (p *Plugin) Positions() []string {
	return append([]string(nil), p.positions...)
}

// Serves reports whether position is one of the plugin's positions.
func (p *Plugin) Serves(position string) bool {
	for _, pos := range p.positions {
		if pos == position {
			return true
		}
	}
	return false
}

// Register adds one render hook per position to panel. A disabled plugin
// registers nothing.
func (p *Plugin) Register(panel Panel) {
	if !p.IsEnabled() {
		p.logger.Debug("plugin disabled, skipping hook registration")
		return
	}
	for _, position := range p.positions {
		panel.RenderHook(position, p.Hook(position))
	}
	p.logger.Debug("render hooks registered", logger.Count(len(p.positions)))
}

// Hook returns the render hook for position. It takes the alerts queued in the
// request registry, so each alert renders once.
func (p *Plugin) Hook(position string) HookFunc {
	return func(ctx context.Context) templ.Component {
		if !p.IsEnabled() {
			return templ.NopComponent
		}
		reg := alert.FromContext(ctx)
		if reg == nil {
			return templ.NopComponent
		}
		alerts := reg.Take(position)
		if len(alerts) == 0 {
			return templ.NopComponent
		}
		return p.Component(position, alerts)
	}
}

// Component renders alerts for position with the plugin's render options.
func (p *Plugin) Component(position string, alerts []alert.Config) templ.Component {
	return render.Alerts(position, alerts, p.renderOpts...)
}

// Middleware attaches a fresh registry, using the plugin palette, to every request.
func (p *Plugin) Middleware() func(http.Handler) http.Handler {
	return alert.Middleware(
		alert.WithColorSource(p.colors),
		alert.WithLogger(p.logger),
	)
}

// NewRegistry returns a registry using the plugin palette, for use outside HTTP handlers.
func (p *Plugin) NewRegistry() *alert.Registry {
	return alert.NewRegistry(
		alert.WithColorSource(p.colors),
		alert.WithLogger(p.logger),
	)
}
