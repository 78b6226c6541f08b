package alert

import "strings"

// Severity is the alert kind. It selects the color scheme and default icon.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"

	// SeverityError is accepted on input and stored as SeverityDanger.
	SeverityError Severity = "error"
)

// ParseSeverity validates s and maps the "error" alias to danger.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(s); sev {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityDanger:
		return sev, nil
	case SeverityError:
		return SeverityDanger, nil
	}
	return "", invalidArgument("Invalid alert type: %s", s)
}

// Valid reports whether s is one of the four stored severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityDanger:
		return true
	}
	return false
}

// DefaultIcon returns the icon used when the caller did not pick one.
func (s Severity) DefaultIcon() string {
	switch s {
	case SeveritySuccess:
		return "heroicon-o-check-circle"
	case SeverityWarning:
		return "heroicon-o-exclamation-triangle"
	case SeverityDanger, SeverityError:
		return "heroicon-o-x-circle"
	default:
		return "heroicon-o-information-circle"
	}
}

// Variant is the visual card treatment.
type Variant int

const (
	VariantBanner   Variant = 1 // left accent border
	VariantBordered Variant = 2 // tinted card with border
	VariantElevated Variant = 3 // neutral card with colored border
	VariantMinimal  Variant = 4 // inline, tinted background only
)

// Valid reports whether v is one of the four variants.
func (v Variant) Valid() bool {
	return v >= VariantBanner && v <= VariantMinimal
}

func (v Variant) String() string {
	switch v {
	case VariantBanner:
		return "banner"
	case VariantBordered:
		return "bordered"
	case VariantElevated:
		return "elevated"
	case VariantMinimal:
		return "minimal"
	}
	return "unknown"
}

// IconSize controls icon and close button dimensions.
type IconSize string

const (
	IconSizeXS IconSize = "xs"
	IconSizeS  IconSize = "s"
	IconSizeM  IconSize = "m"
	IconSizeLG IconSize = "lg"
	IconSizeXL IconSize = "xl"
)

// DefaultIconSize is used when no size is set and after NoIcon.
const DefaultIconSize = IconSizeM

// ParseIconSize validates s case-insensitively and returns it lowercased.
func ParseIconSize(s string) (IconSize, error) {
	switch size := IconSize(strings.ToLower(s)); size {
	case IconSizeXS, IconSizeS, IconSizeM, IconSizeLG, IconSizeXL:
		return size, nil
	}
	return "", invalidArgument("Icon size must be one of: xs, s, m, lg, xl, got %s", s)
}

// Well-known render hook positions.
const (
	PositionPageHeaderAfter = "panels::page.header.widgets.after"
	PositionPageStart       = "panels::page.start"
	PositionSidebarNavEnd   = "panels::sidebar.nav.end"
	PositionTopbarStart     = "panels::topbar.start"
	PositionPageEnd         = "panels::page.end"
	PositionFooter          = "panels::footer"
)

// DefaultPosition is the position of a new builder.
const DefaultPosition = PositionPageHeaderAfter

// Positions returns the well-known positions in registration order.
func Positions() []string {
	return []string{
		PositionPageHeaderAfter,
		PositionPageStart,
		PositionSidebarNavEnd,
		PositionTopbarStart,
		PositionPageEnd,
		PositionFooter,
	}
}
