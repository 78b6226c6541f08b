package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/alertbox/pkg/alert"
)

// CloseIcon is drawn inside the close button.
const CloseIcon = "heroicon-m-x-mark"

// Option configures rendering.
type Option func(*options)

type options struct {
	icons IconResolver
}

// WithIconResolver replaces HeroiconResolver. Nil is ignored.
func WithIconResolver(r IconResolver) Option {
	return func(o *options) {
		if r != nil {
			o.icons = r
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{icons: HeroiconResolver}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ContainerID returns the DOM id of the wrapper rendered for position.
func ContainerID(position string) string {
	var b strings.Builder
	b.WriteString("alertbox-")
	dash := false
	for _, r := range strings.ToLower(position) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Alerts renders every alert of a position inside one wrapper element.
// An empty list renders nothing.
func Alerts(position string, alerts []alert.Config, opts ...Option) templ.Component {
	o := newOptions(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(alerts) == 0 {
			return nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<div id="%s" class="alertbox" data-position="%s">`, esc(ContainerID(position)), esc(position))
		for _, cfg := range alerts {
			if err := writeCard(ctx, &b, cfg, o); err != nil {
				return err
			}
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Alert renders a single card without the position wrapper.
func Alert(cfg alert.Config, opts ...Option) templ.Component {
	o := newOptions(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if err := writeCard(ctx, &b, cfg, o); err != nil {
			return err
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeCard(ctx context.Context, b *strings.Builder, cfg alert.Config, o *options) error {
	scheme := Scheme(cfg.Severity)
	dims := IconDimensions(cfg.IconSize)
	minimal := cfg.Variant == alert.VariantMinimal

	fmt.Fprintf(b, `<div class="%s" id="alert-%s" data-severity="%s" data-variant="%s"%s`,
		esc(join("mb-4", cfg.Classes)), esc(cfg.ID), esc(string(normalize(cfg.Severity))), cfg.Variant, styleAttr(cfg.Style))
	if cfg.ShouldAutoHide() {
		fmt.Fprintf(b, ` x-data="{ show: true }" x-init="setTimeout(() => show = false, %d)" x-show="show"`+
			` x-transition:leave="transition ease-in duration-300" x-transition:leave-start="opacity-100" x-transition:leave-end="opacity-0"`,
			cfg.TimeoutMs)
	}
	b.WriteString(`>`)

	fmt.Fprintf(b, `<div class="%s"><div class="flex items-center justify-between">`, esc(ContainerClasses(cfg.Variant, scheme)))

	spacing := "space-x-3"
	if minimal {
		spacing = "space-x-2"
	}
	fmt.Fprintf(b, `<div class="flex items-center %s">`, spacing)

	if cfg.HasIcon() {
		fmt.Fprintf(b, `<div class="%s">`, esc(join("flex-shrink-0", scheme.IconBackground, scheme.DarkIconBackground, dims.Wrapper, "rounded-full")))
		if err := o.icons.Icon(cfg.Icon, join(dims.Icon, scheme.Icon, scheme.DarkIcon), colorStyle(cfg.IconColor)).Render(ctx, b); err != nil {
			return err
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div class="flex-1">`)
	titleClasses := join("text-base font-medium", scheme.Text, scheme.DarkText, "text-lg font-bold")
	if cfg.Title != "" {
		if minimal {
			fmt.Fprintf(b, `<span class="%s"%s>%s:</span>`, esc(titleClasses), styleAttr(colorStyle(cfg.TitleColor)), esc(cfg.Title))
		} else {
			fmt.Fprintf(b, `<h3 class="%s"%s>%s</h3>`, esc(titleClasses), styleAttr(colorStyle(cfg.TitleColor)), esc(cfg.Title))
		}
	}
	if cfg.Description != "" {
		descClasses := join("text-sm", scheme.Description, scheme.DarkDescription, "opacity-90 mt-1")
		tag := "p"
		if minimal {
			tag = "span"
		}
		fmt.Fprintf(b, `<%s class="%s"%s>%s</%s>`, tag, esc(descClasses), styleAttr(colorStyle(cfg.DescriptionColor)), esc(cfg.Description), tag)
	}
	b.WriteString(`</div></div>`)

	if cfg.Closeable {
		buttonClasses := join("transition-colors duration-200 p-1 rounded-md hover:bg-black/5 dark:hover:bg-white/10",
			scheme.Icon, scheme.DarkIcon, "hover:"+scheme.Text, "dark:hover:"+strings.TrimPrefix(scheme.DarkText, "dark:"))
		fmt.Fprintf(b, `<div class="flex-shrink-0 ml-4"><button type="button" class="%s" onclick="this.closest('[id^=alert-]').remove()" aria-label="Close alert">`, esc(buttonClasses))
		if err := o.icons.Icon(CloseIcon, dims.Button, "").Render(ctx, b); err != nil {
			return err
		}
		b.WriteString(`</button></div>`)
	}

	b.WriteString(`</div></div></div>`)
	return nil
}

// normalize maps "error" to danger.
func normalize(s alert.Severity) alert.Severity {
	if s == alert.SeverityError {
		return alert.SeverityDanger
	}
	return s
}

// String renders c into a string.
func String(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func styleAttr(style string) string {
	if style == "" {
		return ""
	}
	return fmt.Sprintf(` style="%s"`, esc(style))
}

func colorStyle(color string) string {
	if color == "" {
		return ""
	}
	return "color: " + color
}

func join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
