package alert

import (
	"context"
	"net/http"
)

type registryKey struct{}

// WithContext returns a copy of ctx carrying r.
func WithContext(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, r)
}

// FromContext returns the registry stored in ctx, or nil.
func FromContext(ctx context.Context) *Registry {
	if ctx == nil {
		return nil
	}
	r, _ := ctx.Value(registryKey{}).(*Registry)
	return r
}

// Middleware stores a fresh Registry in every request context. A registry
// already present in the context is kept.
func Middleware(opts ...RegistryOption) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if FromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := WithContext(r.Context(), NewRegistry(opts...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Make returns a builder bound to the registry in ctx. Without one, Show on
// the returned builder fails with ErrNoRegistry.
func Make(ctx context.Context, title string) *Builder {
	if r := FromContext(ctx); r != nil {
		return r.Make(title)
	}
	return NewBuilder(WithTitle(title))
}

// Success returns a success alert titled message.
func Success(ctx context.Context, message string) *Builder {
	return Make(ctx, message).Success()
}

// Error returns a danger alert titled message.
func Error(ctx context.Context, message string) *Builder {
	return Make(ctx, message).Danger()
}

// Warning returns a warning alert titled message.
func Warning(ctx context.Context, message string) *Builder {
	return Make(ctx, message).Warning()
}

// Info returns an info alert titled message.
func Info(ctx context.Context, message string) *Builder {
	return Make(ctx, message).Info()
}
