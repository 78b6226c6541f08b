package render

import "github.com/dmitrymomot/alertbox/pkg/alert"

// ColorScheme holds the light and dark utility classes for one severity.
type ColorScheme struct {
	Background         string
	DarkBackground     string
	Text               string
	DarkText           string
	Border             string
	DarkBorder         string
	IconBackground     string
	DarkIconBackground string
	Icon               string
	DarkIcon           string
	Description        string
	DarkDescription    string
}

var schemes = map[alert.Severity]ColorScheme{
	alert.SeveritySuccess: {
		Background: "bg-green-50", DarkBackground: "dark:bg-green-900/20",
		Text: "text-green-800", DarkText: "dark:text-green-200",
		Border: "border-green-200", DarkBorder: "dark:border-green-800",
		IconBackground: "bg-green-100", DarkIconBackground: "dark:bg-green-800/50",
		Icon: "text-green-500", DarkIcon: "dark:text-green-400",
		Description: "text-green-700", DarkDescription: "dark:text-green-300",
	},
	alert.SeverityWarning: {
		Background: "bg-yellow-50", DarkBackground: "dark:bg-yellow-900/20",
		Text: "text-yellow-800", DarkText: "dark:text-yellow-200",
		Border: "border-yellow-200", DarkBorder: "dark:border-yellow-800",
		IconBackground: "bg-yellow-100", DarkIconBackground: "dark:bg-yellow-800/50",
		Icon: "text-yellow-500", DarkIcon: "dark:text-yellow-400",
		Description: "text-yellow-700", DarkDescription: "dark:text-yellow-300",
	},
	alert.SeverityDanger: {
		Background: "bg-red-50", DarkBackground: "dark:bg-red-900/20",
		Text: "text-red-800", DarkText: "dark:text-red-200",
		Border: "border-red-200", DarkBorder: "dark:border-red-800",
		IconBackground: "bg-red-100", DarkIconBackground: "dark:bg-red-800/50",
		Icon: "text-red-500", DarkIcon: "dark:text-red-400",
		Description: "text-red-700", DarkDescription: "dark:text-red-300",
	},
	alert.SeverityInfo: {
		Background: "bg-blue-50", DarkBackground: "dark:bg-blue-900/20",
		Text: "text-blue-800", DarkText: "dark:text-blue-200",
		Border: "border-blue-200", DarkBorder: "dark:border-blue-800",
		IconBackground: "bg-blue-100", DarkIconBackground: "dark:bg-blue-800/50",
		Icon: "text-blue-500", DarkIcon: "dark:text-blue-400",
		Description: "text-blue-700", DarkDescription: "dark:text-blue-300",
	},
}

// Scheme returns the classes for severity. "error" maps to danger and
// anything unknown to info.
func Scheme(severity alert.Severity) ColorScheme {
	if severity == alert.SeverityError {
		severity = alert.SeverityDanger
	}
	if s, ok := schemes[severity]; ok {
		return s
	}
	return schemes[alert.SeverityInfo]
}

// ContainerClasses returns the card classes for a variant. Unknown variants
// render as minimal.
func ContainerClasses(v alert.Variant, s ColorScheme) string {
	switch v {
	case alert.VariantBanner:
		return join("p-4", s.Background, s.DarkBackground, "border-l-4", s.Border, s.DarkBorder)
	case alert.VariantBordered:
		return join("p-4", s.Background, s.DarkBackground, "border", s.Border, s.DarkBorder, "rounded-lg")
	case alert.VariantElevated:
		return join("p-4 bg-white dark:bg-gray-800 shadow-sm border", s.Border, s.DarkBorder, "rounded-lg")
	default:
		return join("p-4", s.Background, s.DarkBackground, "rounded-lg")
	}
}

// Dimensions holds the size classes for an icon size.
type Dimensions struct {
	Icon    string
	Wrapper string
	Button  string
}

// IconDimensions returns the classes for size. Unknown sizes use m.
func IconDimensions(size alert.IconSize) Dimensions {
	switch size {
	case alert.IconSizeXS:
		return Dimensions{Icon: "w-3 h-3", Wrapper: "p-1", Button: "w-3 h-3"}
	case alert.IconSizeS:
		return Dimensions{Icon: "w-4 h-4", Wrapper: "p-1.5", Button: "w-4 h-4"}
	case alert.IconSizeLG:
		return Dimensions{Icon: "w-8 h-8", Wrapper: "p-3", Button: "w-6 h-6"}
	case alert.IconSizeXL:
		return Dimensions{Icon: "w-10 h-10", Wrapper: "p-4", Button: "w-7 h-7"}
	default:
		return Dimensions{Icon: "w-6 h-6", Wrapper: "p-2", Button: "w-5 h-5"}
	}
}
