package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertbox"
	"github.com/dmitrymomot/alertbox/pkg/alert"
	"github.com/dmitrymomot/alertbox/pkg/logger"
)

func testRouter(t *testing.T, cfg alertbox.Config) http.Handler {
	t.Helper()
	cfg.Enabled = true
	plugin, err := alertbox.NewFromConfig(cfg, alertbox.WithLogger(logger.Nop()))
	require.NoError(t, err)
	return newRouter(plugin, cfg, logger.Nop())
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPage(t *testing.T) {
	t.Parallel()

	h := testRouter(t, alertbox.Config{})

	t.Run("empty page has a wrapper per position", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="alertbox-panels-footer"`)
		assert.Contains(t, body, `id="alertbox-panels-page-start"`)
		assert.NotContains(t, body, `id="alert-`)
	})

	t.Run("flashed alert renders at its position", func(t *testing.T) {
		t.Parallel()

		q := url.Values{
			"title":       {"Deployed"},
			"description": {"v1.2.3 is live"},
			"type":        {"success"},
			"variant":     {"2"},
			"size":        {"LG"},
			"position":    {alert.PositionPageStart},
		}
		body := get(h, "/?"+q.Encode()).Body.String()

		assert.Contains(t, body, "Deployed")
		assert.Contains(t, body, "v1.2.3 is live")
		assert.Contains(t, body, "bg-green-50")
		assert.Contains(t, body, "w-8 h-8")
		assert.Equal(t, 1, strings.Count(body, `id="alertbox-panels-page-start"`))
	})

	t.Run("invalid variant is not shown", func(t *testing.T) {
		t.Parallel()

		body := get(h, "/?title=Oops&variant=7").Body.String()
		assert.NotContains(t, body, "Oops")
	})
}

func TestNotify(t *testing.T) {
	t.Parallel()

	h := testRouter(t, alertbox.Config{})

	req := httptest.NewRequest(http.MethodPost, "/notify?title=Streamed&type=warning", nil)
	req.Header.Set("Accept", "text/event-stream")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "#alertbox-panels-footer")
	assert.Contains(t, body, "Streamed")
	assert.Contains(t, body, "bg-yellow-50")
}

func TestNotify_BadRequest(t *testing.T) {
	t.Parallel()

	h := testRouter(t, alertbox.Config{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notify?title=x&size=huge", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := testRouter(t, alertbox.Config{})
	assert.Equal(t, "ALIVE", get(h, "/healthz").Body.String())
	assert.Equal(t, "ALIVE", get(h, "/readyz").Body.String())
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var got []string
	h := middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		attr, ok := requestID(r.Context())
		if ok {
			got = append(got, attr.Value.String())
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"req-42"}, got)

	_, ok := requestID(context.Background())
	assert.False(t, ok)
}

func TestNotify_UnknownPosition(t *testing.T) {
	t.Parallel()

	h := testRouter(t, alertbox.Config{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notify?title=x&position=nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
