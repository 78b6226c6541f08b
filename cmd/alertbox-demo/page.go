package main

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/alertbox"
	"github.com/dmitrymomot/alertbox/pkg/alert"
	"github.com/dmitrymomot/alertbox/pkg/render"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>alertbox demo</title>
<script src="https://cdn.tailwindcss.com"></script>
<script defer src="https://cdn.jsdelivr.net/npm/alpinejs@3/dist/cdn.min.js"></script>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-RC.5/bundles/datastar.js"></script>
</head>
<body class="bg-gray-100 dark:bg-gray-900">
`

const pageForm = `<main class="max-w-3xl mx-auto p-6">
<form method="get" action="/" class="space-y-2">
<input name="title" placeholder="Title" class="border p-2 rounded w-full">
<input name="description" placeholder="Description" class="border p-2 rounded w-full">
<select name="type" class="border p-2 rounded"><option>info</option><option>success</option><option>warning</option><option>danger</option></select>
<select name="variant" class="border p-2 rounded"><option value="1">banner</option><option value="2">bordered</option><option value="3">elevated</option><option value="4">minimal</option></select>
<button type="submit" class="bg-blue-600 text-white px-4 py-2 rounded">Show</button>
<button type="button" class="bg-gray-600 text-white px-4 py-2 rounded" data-on-click="@post('/notify?title=Streamed&amp;type=success&amp;timeout=3')">Stream to footer</button>
</form>
</main>
`

// page lays out every position and renders its hooks. Positions without alerts
// get an empty wrapper so streamed alerts have a target.
func page(hooks *alertbox.Hooks, positions []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead+pageForm); err != nil {
			return err
		}
		reg := alert.FromContext(ctx)
		for _, position := range positions {
			if reg == nil || !reg.Has(position) {
				if err := placeholder(position).Render(ctx, w); err != nil {
					return err
				}
				continue
			}
			if err := hooks.Render(ctx, position).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

func placeholder(position string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="`+templ.EscapeString(render.ContainerID(position))+`" data-position="`+templ.EscapeString(position)+`"></div>`)
		return err
	})
}
