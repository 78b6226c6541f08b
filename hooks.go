package alertbox

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/a-h/templ"
)

// HookFunc produces the markup for one render hook.
type HookFunc func(ctx context.Context) templ.Component

// Panel accepts render hooks keyed by position.
type Panel interface {
	RenderHook(position string, hook HookFunc)
}

// Hooks is an in-memory Panel. Layouts call Render at each position.
type Hooks struct {
	mu    sync.RWMutex
	hooks map[string][]HookFunc
}

// NewHooks returns an empty Hooks.
func NewHooks() *Hooks {
	return &Hooks{hooks: make(map[string][]HookFunc)}
}

// RenderHook appends hook to position.
func (h *Hooks) RenderHook(position string, hook HookFunc) {
	if hook == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks[position] = append(h.hooks[position], hook)
}

// Render returns a component running every hook registered at position, in
// registration order. Hooks receive the context the component is rendered
// with, which carries the request registry.
func (h *Hooks) Render(_ context.Context, position string) templ.Component {
	h.mu.RLock()
	hooks := append([]HookFunc(nil), h.hooks[position]...)
	h.mu.RUnlock()

	if len(hooks) == 0 {
		return templ.NopComponent
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, hook := range hooks {
			c := hook(ctx)
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Positions returns the positions that have at least one hook, sorted.
func (h *Hooks) Positions() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, 0, len(h.hooks))
	for p := range h.hooks {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
