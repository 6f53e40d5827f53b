package ui

import (
	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/ilmnur/admin-dashboard/internal/model"
)

// ViewField describes one row of a read-only detail modal.
type ViewField struct {
	Label string
	Key   string
	// Render overrides the default formatting for this field.
	Render func(value any, row model.Record) templ.Component
	// File marks the field as holding a stored file path, rendered as an
	// image preview or download link.
	File bool
	// FullWidth spans the field across both detail columns, for long text.
	FullWidth bool
}

// View renders a record's detail modal from a field spec.
type View struct {
	Title   string
	Fields  []ViewField
	Row     model.Record
	FileURL func(path string) string
}

// Component renders the detail modal fragment.
func (v View) Component(p *message.Printer) templ.Component {
	return component(func(b *writer) {
		b.p(`<div class="modal-card"><div class="modal-header"><h3>%s</h3>`, esc(v.Title))
		b.p(`<button type="button" class="modal-close" onclick="document.getElementById('modal').innerHTML=''">&times;</button></div>`)
		b.raw(`<dl class="detail-grid">`)

		for _, field := range v.Fields {
			class := "detail-field"
			if field.FullWidth {
				class += " full-width"
			}
			b.p(`<div class="%s"><dt>%s</dt><dd>`, class, esc(field.Label))

			value := v.Row[field.Key]
			switch {
			case field.Render != nil:
				b.renderChild(field.Render(value, v.Row))
			case field.File:
				v.renderFile(b, filePath(value))
			default:
				b.raw(esc(FormatValue(value)))
			}
			b.raw(`</dd></div>`)
		}

		b.raw(`</dl>`)
		b.p(`<div class="form-actions"><button type="button" class="btn" onclick="document.getElementById('modal').innerHTML=''">%s</button></div>`,
			esc(p.Sprintf("button.close")))
		b.raw(`</div>`)
	})
}

// filePath accepts either a bare path string or the backend's nested file
// object and returns the stored path.
func filePath(value any) string {
	switch t := value.(type) {
	case string:
		return t
	case map[string]any:
		return model.Record(t).Str("path")
	default:
		return ""
	}
}

func (v View) renderFile(b *writer, path string) {
	if path == "" || v.FileURL == nil {
		b.raw(esc(FormatValue(nil)))
		return
	}
	url := v.FileURL(path)
	if IsImagePath(path) {
		b.p(`<img class="file-preview" src="%s" alt="">`, esc(url))
		return
	}
	b.p(`<a href="%s" target="_blank" rel="noopener">%s</a>`, esc(url), esc(path))
}

// DateCell formats a timestamp column value for tables and views.
func DateCell(value any, _ model.Record) templ.Component {
	return Text(FormatDate(rawString(value)))
}

// BoolCell renders a boolean as a status badge.
func BoolCell(value any, _ model.Record) templ.Component {
	return component(func(b *writer) {
		if v, ok := value.(bool); ok && v {
			b.raw(`<span class="badge badge-on">Yes</span>`)
			return
		}
		b.raw(`<span class="badge badge-off">No</span>`)
	})
}
