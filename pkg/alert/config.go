package alert

import "github.com/google/uuid"

// DefaultTimeoutMs is the auto-hide delay used when none is set.
const DefaultTimeoutMs = 5000

// Config is a finished alert. Empty strings mean "not set".
type Config struct {
	ID               string   `json:"id"`
	Severity         Severity `json:"type"`
	Title            string   `json:"title,omitempty"`
	Description      string   `json:"description,omitempty"`
	Variant          Variant  `json:"style_type"`
	Closeable        bool     `json:"closeable"`
	AutoHide         bool     `json:"auto_hide"`
	TimeoutMs        int      `json:"timeout"`
	Permanent        bool     `json:"permanent"`
	IconSize         IconSize `json:"icon_size"`
	ShowIcon         bool     `json:"show_icon"`
	Icon             string   `json:"icon,omitempty"`
	IconColor        string   `json:"icon_color,omitempty"`
	TitleColor       string   `json:"title_color,omitempty"`
	DescriptionColor string   `json:"description_color,omitempty"`
	Classes          string   `json:"classes,omitempty"`
	Style            string   `json:"style,omitempty"`
}

// DefaultConfig returns a config with every default applied and no id.
// Start from it when adding configs to a Registry directly.
func DefaultConfig() Config {
	return Config{
		Severity:  SeverityInfo,
		Variant:   VariantBanner,
		Closeable: true,
		TimeoutMs: DefaultTimeoutMs,
		IconSize:  DefaultIconSize,
		ShowIcon:  true,
	}
}

// ShouldAutoHide reports whether the alert is dismissed by a timer.
func (c Config) ShouldAutoHide() bool {
	return c.AutoHide && !c.Permanent && c.TimeoutMs > 0
}

// HasIcon reports whether an icon should be drawn.
func (c Config) HasIcon() bool {
	return c.ShowIcon && c.Icon != ""
}

// fillDefaults sets the fields whose zero value is never meaningful.
func (c Config) fillDefaults() Config {
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.Variant == 0 {
		c.Variant = VariantBanner
	}
	if c.IconSize == "" {
		c.IconSize = DefaultIconSize
	}
	if c.TimeoutMs <= 0 {
		c.TimeoutMs = DefaultTimeoutMs
	}
	return c
}

// NewID returns a fresh alert id.
func NewID() string {
	return "alert_" + uuid.NewString()
}
