// Package ui renders the dashboard's HTML. Every component is declarative:
// tables render from a column spec, forms and read-only views from field
// specs, so screens never hand-write markup for their resources.
package ui

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Option is one choice in a select or searchable-select field.
type Option struct {
	Value string
	Label string
}

// NavItem is one sidebar entry.
type NavItem struct {
	URL    string
	Label  string
	Active bool
}

// Flash is a one-shot notification banner.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// writer accumulates HTML output, capturing the first write error.
type writer struct {
	w   io.Writer
	err error
}

func (b *writer) p(format string, args ...any) {
	if b.err != nil {
		return
	}
	_, b.err = fmt.Fprintf(b.w, format, args...)
}

func (b *writer) raw(s string) {
	if b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.w, s)
}

func esc(s string) string {
	return html.EscapeString(s)
}

// component wraps a writer-based render function as a templ.Component.
func component(render func(b *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &writer{w: w}
		render(b)
		return b.err
	})
}

// Text renders escaped plain text.
func Text(s string) templ.Component {
	return component(func(b *writer) {
		b.raw(esc(s))
	})
}

// Sequence renders components one after another.
func Sequence(children ...templ.Component) templ.Component {
	return component(func(b *writer) {
		for _, c := range children {
			b.renderChild(c)
		}
	})
}

// ToolbarButton is one button in a screen's toolbar. Modal buttons load
// their target into the modal container; plain ones navigate.
type ToolbarButton struct {
	Label string
	URL   string
	// Navigate makes the button a plain link instead of a modal trigger.
	Navigate bool
}

// Toolbar renders the button row above a screen's table.
func Toolbar(buttons ...ToolbarButton) templ.Component {
	return component(func(b *writer) {
		b.raw(`<div class="toolbar">`)
		for _, btn := range buttons {
			if btn.Navigate {
				b.p(`<a class="btn btn-primary" href="%s">%s</a>`, esc(btn.URL), esc(btn.Label))
				continue
			}
			b.p(`<button class="btn btn-primary" hx-get="%s" hx-target="#modal" hx-swap="innerHTML">%s</button>`,
				esc(btn.URL), esc(btn.Label))
		}
		b.raw(`</div>`)
	})
}
