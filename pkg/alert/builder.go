package alert

import (
	"github.com/dmitrymomot/alertbox/pkg/theme"
)

// ColorSource supplies per-severity colors. theme.Palette and *theme.Store implement it.
type ColorSource interface {
	Lookup(severity string) (theme.Colors, bool)
}

// Builder accumulates one alert through chained calls. It is not safe for
// concurrent use.
type Builder struct {
	cfg      Config
	position string
	registry *Registry
	colors   ColorSource
	err      error
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithRegistry binds the builder to the registry Show commits to.
func WithRegistry(r *Registry) BuilderOption {
	return func(b *Builder) { b.registry = r }
}

// WithColors sets the source of default colors used by the severity setters.
func WithColors(src ColorSource) BuilderOption {
	return func(b *Builder) { b.colors = src }
}

// WithTitle seeds the title. An empty title is ignored.
func WithTitle(title string) BuilderOption {
	return func(b *Builder) {
		if title != "" {
			b.cfg.Title = title
		}
	}
}

// WithPosition sets the initial position.
func WithPosition(position string) BuilderOption {
	return func(b *Builder) { b.position = position }
}

// NewBuilder returns a builder holding DefaultConfig with a fresh id.
func NewBuilder(opts ...BuilderOption) *Builder {
	cfg := DefaultConfig()
	cfg.ID = NewID()

	b := &Builder{
		cfg:      cfg,
		position: DefaultPosition,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// fail records the first error. The draft is left untouched.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Err returns the first validation error recorded by a setter.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) Title(title string) *Builder {
	if title == "" {
		return b.fail(invalidArgument("Title cannot be empty"))
	}
	b.cfg.Title = title
	return b
}

func (b *Builder) Description(description string) *Builder {
	b.cfg.Description = description
	return b
}

// Message is an alias of Description.
func (b *Builder) Message(message string) *Builder {
	return b.Description(message)
}

// Variant sets the card style, 1 through 4.
func (b *Builder) Variant(v Variant) *Builder {
	if !v.Valid() {
		return b.fail(invalidArgument("Card style must be between 1 and 4, got %d", int(v)))
	}
	b.cfg.Variant = v
	return b
}

func (b *Builder) Banner() *Builder   { return b.Variant(VariantBanner) }
func (b *Builder) Bordered() *Builder { return b.Variant(VariantBordered) }
func (b *Builder) Elevated() *Builder { return b.Variant(VariantElevated) }
func (b *Builder) Minimal() *Builder  { return b.Variant(VariantMinimal) }

// Icon sets the icon identifier and turns icon display back on.
func (b *Builder) Icon(name string) *Builder {
	if name == "" {
		return b.fail(invalidArgument("Icon cannot be empty"))
	}
	b.cfg.Icon = name
	b.cfg.ShowIcon = true
	return b
}

// NoIcon hides the icon. It clears the icon and its color and resets the
// icon size. NoIcon(false) only turns display back on.
func (b *Builder) NoIcon(hide ...bool) *Builder {
	if len(hide) > 0 && !hide[0] {
		b.cfg.ShowIcon = true
		return b
	}
	b.cfg.ShowIcon = false
	b.cfg.Icon = ""
	b.cfg.IconColor = ""
	b.cfg.IconSize = DefaultIconSize
	return b
}

// IconSize accepts xs, s, m, lg or xl in any case.
func (b *Builder) IconSize(size string) *Builder {
	s, err := ParseIconSize(size)
	if err != nil {
		return b.fail(err)
	}
	b.cfg.IconSize = s
	return b
}

func (b *Builder) IconXS() *Builder { return b.IconSize(string(IconSizeXS)) }
func (b *Builder) IconS() *Builder  { return b.IconSize(string(IconSizeS)) }
func (b *Builder) IconM() *Builder  { return b.IconSize(string(IconSizeM)) }
func (b *Builder) IconLG() *Builder { return b.IconSize(string(IconSizeLG)) }
func (b *Builder) IconXL() *Builder { return b.IconSize(string(IconSizeXL)) }

func (b *Builder) IconColor(color string) *Builder {
	if err := validateColor(color); err != nil {
		return b.fail(err)
	}
	b.cfg.IconColor = color
	return b
}

func (b *Builder) TitleColor(color string) *Builder {
	if err := validateColor(color); err != nil {
		return b.fail(err)
	}
	b.cfg.TitleColor = color
	return b
}

func (b *Builder) DescriptionColor(color string) *Builder {
	if err := validateColor(color); err != nil {
		return b.fail(err)
	}
	b.cfg.DescriptionColor = color
	return b
}

func validateColor(color string) error {
	if color == "" {
		return invalidArgument("Color cannot be empty")
	}
	if !theme.IsColor(color) {
		return invalidArgument("Invalid color format: %s", color)
	}
	return nil
}

func (b *Builder) Success() *Builder { return b.severity(SeveritySuccess) }
func (b *Builder) Danger() *Builder  { return b.severity(SeverityDanger) }
func (b *Builder) Warning() *Builder { return b.severity(SeverityWarning) }
func (b *Builder) Info() *Builder    { return b.severity(SeverityInfo) }

// Error is an alias of Danger.
func (b *Builder) Error() *Builder { return b.Danger() }

// severity sets the kind and fills the icon and colors the caller left unset.
// A hidden icon stays hidden.
func (b *Builder) severity(s Severity) *Builder {
	b.cfg.Severity = s

	colors := b.defaultColors(s)
	if b.cfg.ShowIcon {
		if b.cfg.Icon == "" {
			b.cfg.Icon = s.DefaultIcon()
		}
		if b.cfg.IconColor == "" {
			b.cfg.IconColor = colors.Icon
		}
	}
	if b.cfg.TitleColor == "" {
		b.cfg.TitleColor = colors.Title
	}
	if b.cfg.DescriptionColor == "" {
		b.cfg.DescriptionColor = colors.Description
	}
	return b
}

func (b *Builder) defaultColors(s Severity) theme.Colors {
	fallback, _ := theme.DefaultPalette().Lookup(string(s))
	if b.colors == nil {
		return fallback
	}
	colors, _ := b.colors.Lookup(string(s))
	return colors.Merge(fallback)
}

func (b *Builder) Closeable(closeable bool) *Builder {
	b.cfg.Closeable = closeable
	return b
}

// Classes sets extra CSS classes on the alert wrapper. Not validated.
func (b *Builder) Classes(classes string) *Builder {
	b.cfg.Classes = classes
	return b
}

// Style sets inline CSS on the alert wrapper. Not validated.
func (b *Builder) Style(style string) *Builder {
	b.cfg.Style = style
	return b
}

// AutoDisappear hides the alert after seconds and clears Permanent.
func (b *Builder) AutoDisappear(seconds int) *Builder {
	if seconds <= 0 {
		return b.fail(invalidArgument("Timeout must be greater than 0"))
	}
	b.cfg.AutoHide = true
	b.cfg.TimeoutMs = seconds * 1000
	b.cfg.Permanent = false
	return b
}

// Permanent marks the alert as never auto-hiding. Permanent(false) only clears the flag.
func (b *Builder) Permanent(permanent ...bool) *Builder {
	p := len(permanent) == 0 || permanent[0]
	b.cfg.Permanent = p
	if p {
		b.cfg.AutoHide = false
	}
	return b
}

// Position sets the render hook the alert is shown at. The last call wins.
func (b *Builder) Position(position string) *Builder {
	b.position = position
	return b
}

// RenderHook is an alias of Position.
func (b *Builder) RenderHook(hook string) *Builder {
	return b.Position(hook)
}

func (b *Builder) PageHeaderAfter() *Builder { return b.Position(PositionPageHeaderAfter) }
func (b *Builder) PageStart() *Builder       { return b.Position(PositionPageStart) }
func (b *Builder) SidebarNavEnd() *Builder   { return b.Position(PositionSidebarNavEnd) }
func (b *Builder) TopbarStart() *Builder     { return b.Position(PositionTopbarStart) }
func (b *Builder) PageEnd() *Builder         { return b.Position(PositionPageEnd) }
func (b *Builder) Footer() *Builder          { return b.Position(PositionFooter) }

// CurrentPosition returns the position Show will use.
func (b *Builder) CurrentPosition() string {
	return b.position
}

// Config returns a copy of the draft.
func (b *Builder) Config() Config {
	return b.cfg
}

// Show commits the draft to the registry at the current position. It returns
// the first recorded validation error without committing. Calling Show again
// adds the same alert a second time.
func (b *Builder) Show() error {
	if b.err != nil {
		return b.err
	}
	if b.registry == nil {
		return ErrNoRegistry
	}
	return b.registry.Add(b.position, b.cfg)
}
