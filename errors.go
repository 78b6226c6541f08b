package alertbox

import "errors"

var (
	// ErrUnknownPosition is returned by Stream for a position the plugin does not serve.
	ErrUnknownPosition = errors.New("alertbox: unknown position")

	// ErrRender is returned when alert markup cannot be written.
	ErrRender = errors.New("alertbox: failed to render alerts")

	// ErrLoadTheme is returned by NewFromConfig when the theme file cannot be loaded.
	ErrLoadTheme = errors.New("alertbox: failed to load theme")
)
