package alert

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/alertbox/pkg/logger"
)

// Registry collects finished alerts per position in insertion order.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	alerts map[string][]Config
	colors ColorSource
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithColorSource sets the colors handed to builders created by Make.
func WithColorSource(src ColorSource) RegistryOption {
	return func(r *Registry) { r.colors = src }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		alerts: make(map[string][]Config),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Make returns a builder bound to r. A non-empty title seeds the alert title.
func (r *Registry) Make(title string) *Builder {
	return NewBuilder(WithRegistry(r), WithColors(r.colors), WithTitle(title))
}

// Add appends cfg to the position's list. The "error" severity is stored as
// danger, and a missing id, variant, icon size or timeout gets its default.
func (r *Registry) Add(position string, cfg Config) error {
	if position == "" {
		return invalidArgument("Position cannot be empty")
	}

	severity, err := ParseSeverity(string(cfg.Severity))
	if err != nil {
		return err
	}
	cfg.Severity = severity
	cfg = cfg.fillDefaults()

	r.mu.Lock()
	r.alerts[position] = append(r.alerts[position], cfg)
	r.mu.Unlock()

	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "alert added",
		logger.Position(position),
		logger.AlertID(cfg.ID),
		logger.Severity(string(cfg.Severity)),
	)
	return nil
}

// Alerts returns a copy of the alerts at position. Unknown positions yield an empty slice.
func (r *Registry) Alerts(position string) []Config {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Config{}, r.alerts[position]...)
}

// All returns a copy of every position's alerts.
func (r *Registry) All() map[string][]Config {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]Config, len(r.alerts))
	for position, list := range r.alerts {
		out[position] = append([]Config{}, list...)
	}
	return out
}

// Positions returns the sorted positions holding at least one alert.
func (r *Registry) Positions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	positions := make([]string, 0, len(r.alerts))
	for _, position := range slices.Sorted(maps.Keys(r.alerts)) {
		if len(r.alerts[position]) > 0 {
			positions = append(positions, position)
		}
	}
	return positions
}

// Has reports whether position holds at least one alert.
func (r *Registry) Has(position string) bool {
	return r.Count(position) > 0
}

// Count returns the number of alerts at position.
func (r *Registry) Count(position string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.alerts[position])
}

// Total returns the number of alerts across all positions.
func (r *Registry) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, list := range r.alerts {
		total += len(list)
	}
	return total
}

// Clear removes the position's alerts. Clearing an empty position is a no-op.
func (r *Registry) Clear(position string) {
	r.mu.Lock()
	n := len(r.alerts[position])
	delete(r.alerts, position)
	r.mu.Unlock()

	if n > 0 {
		r.logger.LogAttrs(context.Background(), slog.LevelDebug, "alerts cleared",
			logger.Position(position),
			logger.Count(n),
		)
	}
}

// ClearAll removes every alert.
func (r *Registry) ClearAll() {
	r.mu.Lock()
	r.alerts = make(map[string][]Config)
	r.mu.Unlock()
}

// Take returns the position's alerts and removes them in one step.
func (r *Registry) Take(position string) []Config {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.alerts[position]
	delete(r.alerts, position)
	if list == nil {
		return []Config{}
	}
	return list
}
