// Package alertbox wires alerts into a web application.
//
// A Plugin owns the color palette and the list of page positions alerts may be
// shown at. Its Middleware gives every request a fresh alert.Registry, handlers
// queue alerts with the alert package builders, and the layout renders them
// through render hooks registered on a Panel:
//
//	plugin := alertbox.New(alertbox.WithLogger(log))
//	hooks := alertbox.NewHooks()
//	plugin.Register(hooks)
//
//	r := chi.NewRouter()
//	r.Use(plugin.Middleware())
//
//	// in a handler
//	_ = alert.Success(r.Context(), "Saved").Description("Profile updated").Show()
//
//	// in the layout
//	@hooks.Render(ctx, alert.PositionPageStart)
//
// Each hook takes the alerts queued for its position, renders them and discards
// them, so an alert is shown once. A handler answering a datastar request can
// deliver the alerts it queued with Stream, which appends the cards to the
// position wrapper over SSE.
package alertbox
