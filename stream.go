package alertbox

import (
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/alertbox/pkg/alert"
	"github.com/dmitrymomot/alertbox/pkg/render"
)

// Stream writes the alerts queued for position during the current request and
// discards them. Call it from the handler that queued the alerts:
//
//	_ = alert.Success(r.Context(), "Saved").Footer().Show()
//	if err := plugin.Stream(w, r, alert.PositionFooter); err != nil { ... }
//
// Unknown positions return ErrUnknownPosition before anything is written. Datastar
// requests get one SSE element patch per alert, appended to the position
// wrapper; other requests get the wrapper as HTML. Nothing queued yields an
// empty 204 for HTML requests and an idle stream for datastar.
func (p *Plugin) Stream(w http.ResponseWriter, r *http.Request, position string) error {
	if !p.Serves(position) {
		return ErrUnknownPosition
	}

	var alerts []alert.Config
	if p.IsEnabled() {
		if reg := alert.FromContext(r.Context()); reg != nil {
			alerts = reg.Take(position)
		}
	}

	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, cfg := range alerts {
			if err := sse.PatchElementTempl(
				render.Alert(cfg, p.renderOpts...),
				datastar.WithSelector("#"+render.ContainerID(position)),
				datastar.WithMode(datastar.ElementPatchModeAppend),
			); err != nil {
				return errors.Join(ErrRender, err)
			}
		}
		return nil
	}

	if len(alerts) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.Component(position, alerts).Render(r.Context(), w); err != nil {
		return errors.Join(ErrRender, err)
	}
	return nil
}
