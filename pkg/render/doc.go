// Package render turns alert configs into HTML alert cards.
//
// Components are templ.Component values, so they can be embedded in templ
// layouts or written straight to a response:
//
//	alerts := reg.Take(alert.PositionFooter)
//	_ = render.Alerts(alert.PositionFooter, alerts).Render(ctx, w)
//
// Cards use Tailwind utility classes with dark: variants for each severity and
// one of four layouts selected by the alert variant. Icons are drawn by an
// IconResolver; the default resolver knows the heroicons used as severity
// defaults and emits a placeholder span for anything else.
package render
