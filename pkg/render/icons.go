package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// IconResolver turns an icon identifier into markup.
type IconResolver interface {
	Icon(name, class, style string) templ.Component
}

// IconResolverFunc adapts a function to IconResolver.
type IconResolverFunc func(name, class, style string) templ.Component

func (f IconResolverFunc) Icon(name, class, style string) templ.Component {
	return f(name, class, style)
}

// outline (24x24, stroke) path data keyed by heroicon name without the style prefix.
var heroiconPaths = map[string]string{
	"check-circle":         "M9 12.75 11.25 15 15 9.75M21 12a9 9 0 1 1-18 0 9 9 0 0 1 18 0Z",
	"x-circle":             "m9.75 9.75 4.5 4.5m0-4.5-4.5 4.5M21 12a9 9 0 1 1-18 0 9 9 0 0 1 18 0Z",
	"exclamation-triangle": "M12 9v3.75m-9.303 3.376c-.866 1.5.217 3.374 1.948 3.374h14.71c1.73 0 2.813-1.874 1.948-3.374L13.949 3.378c-.866-1.5-3.032-1.5-3.898 0L2.697 16.126ZM12 15.75h.007v.008H12v-.008Z",
	"information-circle":   "m11.25 11.25.041-.02a.75.75 0 0 1 1.063.852l-.708 2.836a.75.75 0 0 0 1.063.853l.041-.021M21 12a9 9 0 1 1-18 0 9 9 0 0 1 18 0Zm-9-3.75h.008v.008H12V8.25Z",
	"x-mark":               "M6 18 18 6M6 6l12 12",
	"bell":                 "M14.857 17.082a23.848 23.848 0 0 0 5.454-1.31A8.967 8.967 0 0 1 18 9.75V9A6 6 0 0 0 6 9v.75a8.967 8.967 0 0 1-2.312 6.022c1.733.64 3.56 1.085 5.455 1.31m5.714 0a24.255 24.255 0 0 1-5.714 0m5.714 0a3 3 0 1 1-5.714 0",
}

// HeroiconResolver draws the bundled heroicons inline. Unknown names become an
// empty span carrying the name in data-icon so a client-side icon set can fill it.
var HeroiconResolver IconResolver = IconResolverFunc(heroicon)

func heroicon(name, class, style string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		path, ok := heroiconPaths[trimHeroiconPrefix(name)]
		if !ok {
			fmt.Fprintf(&b, `<span class="%s"%s data-icon="%s" aria-hidden="true"></span>`,
				esc(class), styleAttr(style), esc(name))
		} else {
			fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="%s"%s data-icon="%s" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" d="%s"></path></svg>`,
				esc(class), styleAttr(style), esc(name), path)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func trimHeroiconPrefix(name string) string {
	for _, prefix := range []string{"heroicon-o-", "heroicon-m-", "heroicon-s-"} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}
