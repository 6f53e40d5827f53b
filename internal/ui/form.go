package ui

import (
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/ilmnur/admin-dashboard/internal/model"
)

// Field kinds understood by the form renderer.
const (
	FieldText         = "text"
	FieldTextarea     = "textarea"
	FieldSelect       = "select"
	FieldSearchSelect = "searchable-select"
	FieldCheckbox     = "checkbox"
	FieldDate         = "date"
	FieldFile         = "file"
	FieldURL          = "url"
	FieldNumber       = "number"
	FieldEmail        = "email"
)

// FormField describes one input in a generated form.
type FormField struct {
	Name     string
	Label    string
	Kind     string
	Required bool
	Options  []Option
	// Default seeds the field when the record has no value for it.
	Default string
	// Rows overrides the textarea height.
	Rows int
}

// Form renders a create/edit modal from a field spec.
type Form struct {
	Title  string
	Action string
	Fields []FormField
	Values map[string]string
	Errors map[string]string
	// Files carries the uploaded file metadata for file fields, keyed by
	// field name, so edit forms can show the current attachment.
	Files map[string]*model.FileData
	// FileURL resolves a stored file path to a previewable URL.
	FileURL     func(path string) string
	SubmitLabel string
}

// SeedValues builds a form value map from a record, falling back to each
// field's default when the record has no value.
func SeedValues(fields []FormField, initial model.Record) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if initial != nil {
			if _, ok := initial[f.Name]; ok {
				values[f.Name] = initial.Str(f.Name)
				continue
			}
		}
		values[f.Name] = f.Default
	}
	return values
}

// Validate checks required fields against submitted values. It returns a
// map of field name to localized message, empty when the form is valid.
func Validate(fields []FormField, values map[string]string, p *message.Printer) map[string]string {
	errs := make(map[string]string)
	for _, f := range fields {
		if !f.Required {
			continue
		}
		if strings.TrimSpace(values[f.Name]) == "" {
			errs[f.Name] = p.Sprintf("form.required", f.Label)
		}
	}
	return errs
}

// Component renders the form as a modal fragment.
func (f Form) Component(p *message.Printer) templ.Component {
	return component(func(b *writer) {
		b.p(`<div class="modal-card"><div class="modal-header"><h3>%s</h3>`, esc(f.Title))
		b.p(`<button type="button" class="modal-close" onclick="document.getElementById('modal').innerHTML=''">&times;</button></div>`)
		b.p(`<form method="post" action="%s" class="modal-form">`, esc(f.Action))

		for _, field := range f.Fields {
			f.renderField(b, field, p)
		}

		submit := f.SubmitLabel
		if submit == "" {
			submit = p.Sprintf("button.save")
		}
		b.p(`<div class="form-actions"><button type="submit" class="btn btn-primary">%s</button>`, esc(submit))
		b.p(`<button type="button" class="btn" onclick="document.getElementById('modal').innerHTML=''">%s</button></div>`,
			esc(p.Sprintf("button.cancel")))
		b.raw(`</form></div>`)
	})
}

func (f Form) renderField(b *writer, field FormField, p *message.Printer) {
	value := f.Values[field.Name]
	fieldErr := f.Errors[field.Name]

	b.p(`<div class="form-field" id="field-%s">`, esc(field.Name))
	if field.Kind != FieldCheckbox {
		b.p(`<label for="%s">%s`, esc(field.Name), esc(field.Label))
		if field.Required {
			b.raw(`<span class="required">*</span>`)
		}
		b.raw(`</label>`)
	}

	switch field.Kind {
	case FieldTextarea:
		rows := field.Rows
		if rows == 0 {
			rows = 4
		}
		b.p(`<textarea id="%s" name="%s" rows="%d">%s</textarea>`,
			esc(field.Name), esc(field.Name), rows, esc(value))

	case FieldSelect:
		b.p(`<select id="%s" name="%s">`, esc(field.Name), esc(field.Name))
		b.p(`<option value="">%s</option>`, esc(p.Sprintf("form.select_placeholder", field.Label)))
		for _, opt := range field.Options {
			selected := ""
			if opt.Value == value && value != "" {
				selected = " selected"
			}
			b.p(`<option value="%s"%s>%s</option>`, esc(opt.Value), selected, esc(opt.Label))
		}
		b.raw(`</select>`)

	case FieldSearchSelect:
		f.renderSearchSelect(b, field, value, p)

	case FieldCheckbox:
		checked := ""
		if value == "true" {
			checked = " checked"
		}
		b.p(`<label class="checkbox-label"><input type="checkbox" id="%s" name="%s" value="true"%s> %s</label>`,
			esc(field.Name), esc(field.Name), checked, esc(field.Label))

	case FieldFile:
		f.renderFileField(b, field, p)

	case FieldDate:
		b.p(`<input type="date" id="%s" name="%s" value="%s">`,
			esc(field.Name), esc(field.Name), esc(value))

	case FieldNumber:
		b.p(`<input type="number" id="%s" name="%s" value="%s">`,
			esc(field.Name), esc(field.Name), esc(value))

	case FieldURL, FieldEmail, FieldText:
		fallthrough
	default:
		kind := field.Kind
		if kind == "" {
			kind = FieldText
		}
		b.p(`<input type="%s" id="%s" name="%s" value="%s">`,
			esc(kind), esc(field.Name), esc(field.Name), esc(value))
	}

	if fieldErr != "" {
		b.p(`<p class="field-error">%s</p>`, esc(fieldErr))
	}
	b.raw(`</div>`)
}

// renderSearchSelect emits a text input that filters a dropdown of options
// client-side. The hidden input carries the selected value; the companion
// script in the page layout wires the filtering, keyboard navigation and the
// clear button, which empties both inputs.
func (f Form) renderSearchSelect(b *writer, field FormField, value string, p *message.Printer) {
	label := ""
	for _, opt := range field.Options {
		if opt.Value == value {
			label = opt.Label
			break
		}
	}
	b.p(`<div class="search-select" data-name="%s">`, esc(field.Name))
	b.p(`<input type="hidden" name="%s" value="%s">`, esc(field.Name), esc(value))
	b.p(`<input type="text" class="search-select-input" placeholder="%s" value="%s" autocomplete="off">`,
		esc(p.Sprintf("form.select_placeholder", field.Label)), esc(label))
	b.p(`<button type="button" class="search-select-clear" title="%s">&times;</button>`,
		esc(p.Sprintf("button.clear")))
	b.raw(`<ul class="search-select-options" hidden>`)
	for _, opt := range field.Options {
		b.p(`<li data-value="%s">%s</li>`, esc(opt.Value), esc(opt.Label))
	}
	b.raw(`</ul></div>`)
}

// renderFileField shows either the current attachment with a remove button
// or an upload input. Uploads post to the gateway's file proxy, which swaps
// this field's container with the updated fragment.
func (f Form) renderFileField(b *writer, field FormField, p *message.Printer) {
	file := f.Files[field.Name]
	value := f.Values[field.Name]

	if file != nil {
		b.p(`<input type="hidden" name="%s" value="%s">`, esc(field.Name), esc(value))
		if f.FileURL != nil && IsImagePath(file.Path) {
			b.p(`<img class="file-preview" src="%s" alt="%s">`, esc(f.FileURL(file.Path)), esc(file.FileName))
		} else {
			b.p(`<p class="file-name">%s</p>`, esc(file.FileName))
		}
		b.p(`<button type="button" class="btn btn-sm" hx-delete="/files/%s?field=%s" hx-target="#field-%s" hx-swap="outerHTML">%s</button>`,
			esc(file.ID), esc(field.Name), esc(field.Name), esc(p.Sprintf("button.remove")))
		return
	}

	b.p(`<input type="hidden" name="%s" value="%s">`, esc(field.Name), esc(value))
	b.p(`<input type="file" name="upload" hx-post="/files?field=%s" hx-encoding="multipart/form-data" hx-target="#field-%s" hx-swap="outerHTML">`,
		esc(field.Name), esc(field.Name))
}

// FileFieldFragment re-renders a single file field after an upload or
// removal, preserving the form's field spec for that name.
func FileFieldFragment(field FormField, value string, file *model.FileData, fileURL func(string) string, p *message.Printer) templ.Component {
	f := Form{
		Fields:  []FormField{field},
		Values:  map[string]string{field.Name: value},
		Files:   map[string]*model.FileData{},
		FileURL: fileURL,
	}
	if file != nil {
		f.Files[field.Name] = file
	}
	return component(func(b *writer) {
		f.renderField(b, field, p)
	})
}
