package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/alertbox"
	"github.com/dmitrymomot/alertbox/pkg/alert"
	"github.com/dmitrymomot/alertbox/pkg/httpserver"
	"github.com/dmitrymomot/alertbox/pkg/logger"
)

func newRouter(plugin *alertbox.Plugin, cfg alertbox.Config, log *slog.Logger) http.Handler {
	hooks := alertbox.NewHooks()
	plugin.Register(hooks)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(plugin.Middleware())

	var checks []httpserver.Check
	if cfg.ThemeFile != "" {
		checks = append(checks, func(context.Context) error {
			_, err := os.Stat(cfg.ThemeFile)
			return err
		})
	}
	r.Get("/healthz", httpserver.HealthHandler(log).ServeHTTP)
	r.Get("/readyz", httpserver.HealthHandler(log, checks...).ServeHTTP)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if err := flash(r); err != nil {
			log.WarnContext(r.Context(), "invalid flash request", logger.Error(err))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page(hooks, plugin.Positions()).Render(r.Context(), w); err != nil {
			log.ErrorContext(r.Context(), "failed to render page", logger.Error(err))
		}
	})

	r.Post("/notify", func(w http.ResponseWriter, r *http.Request) {
		if err := flash(r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		position := r.URL.Query().Get("position")
		if position == "" {
			position = alert.PositionFooter
		}
		if err := plugin.Stream(w, r, position); err != nil {
			log.WarnContext(r.Context(), "failed to stream alert", logger.Position(position), logger.Error(err))
			if errors.Is(err, alertbox.ErrUnknownPosition) {
				http.Error(w, err.Error(), http.StatusNotFound)
			}
		}
	})
	return r
}

// requestID adds the chi request id to log records.
func requestID(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

// flash queues the alert described by the query string: type, title,
// description, variant (1-4), size, position and timeout in seconds.
func flash(r *http.Request) error {
	q := r.URL.Query()
	title := q.Get("title")
	if title == "" {
		return nil
	}

	b := alert.Make(r.Context(), title)
	switch alert.Severity(q.Get("type")) {
	case alert.SeveritySuccess:
		b.Success()
	case alert.SeverityWarning:
		b.Warning()
	case alert.SeverityDanger, alert.SeverityError:
		b.Danger()
	default:
		b.Info()
	}

	if d := q.Get("description"); d != "" {
		b.Description(d)
	}
	if v := q.Get("variant"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return fmt.Errorf("variant: %w", err)
		}
		b.Variant(alert.Variant(n))
	}
	if s := q.Get("size"); s != "" {
		b.IconSize(s)
	}
	if p := q.Get("position"); p != "" {
		b.Position(p)
	}
	if t := q.Get("timeout"); t != "" {
		var seconds int
		if _, err := fmt.Sscanf(t, "%d", &seconds); err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		b.AutoDisappear(seconds)
	}

	return b.Show()
}
