package ui

import (
	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Confirm renders a confirmation dialog fragment. Submitting posts to
// Action; cancelling clears the modal without a request.
type Confirm struct {
	Title   string
	Message string
	Action  string
	// Kind selects the dialog accent: "danger", "warning" or "info".
	Kind string
}

// Component renders the dialog as a modal fragment.
func (c Confirm) Component(p *message.Printer) templ.Component {
	kind := c.Kind
	if kind == "" {
		kind = "danger"
	}
	title := c.Title
	if title == "" {
		title = p.Sprintf("confirm.title")
	}
	msg := c.Message
	if msg == "" {
		msg = p.Sprintf("confirm.message")
	}

	return component(func(b *writer) {
		b.p(`<div class="modal-card confirm-%s">`, esc(kind))
		b.p(`<div class="modal-header"><h3>%s</h3></div>`, esc(title))
		b.p(`<p class="confirm-message">%s</p>`, esc(msg))
		b.p(`<form method="post" action="%s" class="form-actions">`, esc(c.Action))
		b.p(`<button type="submit" class="btn btn-%s">%s</button>`, esc(kind), esc(p.Sprintf("button.confirm")))
		b.p(`<button type="button" class="btn" onclick="document.getElementById('modal').innerHTML=''">%s</button>`,
			esc(p.Sprintf("button.cancel")))
		b.raw(`</form></div>`)
	})
}
