// Package alert builds alert boxes and collects them per page position until
// a layout renders them.
//
// An alert is described by a Config: severity, title, description, visual
// variant, icon, colors and dismissal behavior. Configs are produced by a
// Builder through chained calls and committed with Show to a Registry, which
// keeps an ordered list of alerts for every position ("render hook" key).
//
// # Request scope
//
// A Registry lives for one request. Middleware creates one and stores it in
// the request context; handlers reach it through FromContext or the helper
// constructors:
//
//	r.Use(alert.Middleware())
//
//	func save(w http.ResponseWriter, r *http.Request) {
//	    err := alert.Success(r.Context(), "Saved").
//	        Description("Your changes are live.").
//	        IconLG().
//	        Footer().
//	        Show()
//	    ...
//	}
//
// # Validation
//
// Setters validate their input immediately. A rejected call leaves the draft
// unchanged and records an *InvalidArgumentError; the first such error is kept
// and returned by Err and by Show, which then commits nothing:
//
//	b := alert.NewBuilder().IconSize("huge")
//	b.Err() // Icon size must be one of: xs, s, m, lg, xl, got huge
//
// All validation errors match ErrInvalidArgument with errors.Is.
package alert
