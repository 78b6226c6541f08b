// Package theme maps alert severities to the colors used for an alert's
// title, description and icon.
//
// A Palette is a plain map keyed by severity name ("info", "success",
// "warning", "danger"). DefaultPalette returns the built-in colors and is the
// fallback whenever a palette has no entry for a severity.
//
// Palettes can be loaded from YAML or TOML files:
//
//	colors:
//	  success:
//	    title: "#047857"
//	    description: "#10b981"
//	    icon: "#10b981"
//
// Store holds the active palette and can be swapped at runtime, which is what
// Watch does when the palette file changes:
//
//	store := theme.NewStore(theme.DefaultPalette())
//	go theme.Watch(ctx, "theme.yaml", store.Set, log)
package theme
