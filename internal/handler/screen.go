package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"golang.org/x/text/message"

	"github.com/ilmnur/admin-dashboard/internal/backend"
	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/state"
	"github.com/ilmnur/admin-dashboard/internal/ui"
)

// OptionSource loads the choices for a select field at render time.
type OptionSource func(ctx context.Context) ([]ui.Option, error)

// RowAction adds a custom per-row button beyond view/edit/delete.
type RowAction struct {
	Label string
	URL   func(row model.Record) string
}

// Screen declares one resource screen: its table columns, its form and
// detail field specs, and the backend resource it talks to. The generic
// handlers below drive every screen from this spec alone.
type Screen struct {
	Slug     string
	TitleKey string
	// FilterKey is the column searched client-side. Ignored when
	// ServerPaged is set; the search term then goes to the backend.
	FilterKey  string
	Columns    []ui.Column
	FormFields []ui.FormField
	ViewFields []ui.ViewField
	Resource   *backend.Resource[model.Record]
	// ServerPaged switches the table to backend pagination.
	ServerPaged bool
	PageSize    int
	// Options resolves select-field choices, keyed by field name.
	Options map[string]OptionSource
	// ExtraActions appends custom row buttons after the standard three.
	ExtraActions []RowAction
	// ToolbarButtons appends extra screen-level buttons after Add.
	ToolbarButtons []ui.ToolbarButton
}

func (h *Handler) listPage(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		title := p.Sprintf(s.TitleKey)

		flash := popFlash(w, r)
		table, err := h.loadTable(r, s, p)
		if err != nil {
			slog.Error("list load failed", "screen", s.Slug, "error", err)
			flash = &ui.Flash{Kind: "error", Message: p.Sprintf("error.load")}
		}

		content := ui.Sequence(
			h.toolbar(s, p),
			table.Component(p),
		)
		pg := ui.Page{
			Title:    title,
			Nav:      h.nav(p, s.Slug),
			Flash:    flash,
			Lang:     h.lang(r),
			Username: h.username(),
			Content:  content,
		}
		ui.RenderPage(w, r, nil, pg.Component(p))
	}
}

func (h *Handler) tableFragment(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		table, err := h.loadTable(r, s, p)
		if err != nil {
			slog.Error("table reload failed", "screen", s.Slug, "error", err)
			http.Error(w, p.Sprintf("error.load"), http.StatusBadGateway)
			return
		}
		ui.RenderPage(w, r, table.Component(p), nil)
	}
}

// loadTable fetches the screen's rows and assembles the table spec from
// the request's search and page parameters.
func (h *Handler) loadTable(r *http.Request, s *Screen, p *message.Printer) (ui.Table, error) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	table := ui.Table{
		Columns:   s.Columns,
		Actions:   h.rowActions(s, p),
		FilterKey: s.FilterKey,
		Filter:    search,
		Page:      page,
		ReloadURL: "/" + s.Slug + "/table",
	}

	if s.ServerPaged {
		size := s.PageSize
		if size == 0 {
			size = 10
		}
		pg, err := s.Resource.Paginated(r.Context(), backend.Query{
			Page:     page,
			PageSize: size,
			Search:   search,
		})
		if err != nil {
			return table, err
		}
		table.Rows = pg.Items
		table.HideFilter = true
		table.HidePaging = true
		table.ServerSearch = true
		table.Page = pg.Page
		table.TotalPages = pg.TotalPages
		return table, nil
	}

	rows, err := s.Resource.List(r.Context(), backend.Query{})
	if err != nil {
		return table, err
	}
	table.Rows = rows
	return table, nil
}

func (h *Handler) rowActions(s *Screen, p *message.Printer) []ui.Action {
	base := "/" + s.Slug + "/"
	actions := []ui.Action{
		{Label: p.Sprintf("button.view"), Class: "btn btn-sm", URL: func(row model.Record) string {
			return base + row.ID() + "/view"
		}},
		{Label: p.Sprintf("button.edit"), Class: "btn btn-sm", URL: func(row model.Record) string {
			return base + row.ID() + "/edit"
		}},
		{Label: p.Sprintf("button.delete"), Class: "btn btn-sm btn-danger", URL: func(row model.Record) string {
			return base + row.ID() + "/delete"
		}},
	}
	for _, extra := range s.ExtraActions {
		extra := extra
		actions = append(actions, ui.Action{
			Label: extra.Label,
			Class: "btn btn-sm",
			URL:   extra.URL,
		})
	}
	return actions
}

func (h *Handler) toolbar(s *Screen, p *message.Printer) templ.Component {
	buttons := []ui.ToolbarButton{{
		Label: p.Sprintf("button.add"),
		URL:   "/" + s.Slug + "/new",
	}}
	for _, extra := range s.ToolbarButtons {
		buttons = append(buttons, extra)
	}
	return ui.Toolbar(buttons...)
}

func (h *Handler) newForm(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		fields := h.resolveOptions(r.Context(), s)
		f := ui.Form{
			Title:   p.Sprintf(s.TitleKey),
			Action:  "/" + s.Slug + "/new",
			Fields:  fields,
			Values:  ui.SeedValues(fields, nil),
			Files:   map[string]*model.FileData{},
			FileURL: h.files.URL,
		}
		ui.RenderPage(w, r, f.Component(p), nil)
	}
}

func (h *Handler) create(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		fields := h.resolveOptions(r.Context(), s)
		values := formValues(fields, r)
		if errs := ui.Validate(fields, values, p); len(errs) > 0 {
			h.renderFormPage(w, r, s, fields, values, errs, "/"+s.Slug+"/new", p)
			return
		}

		payload := buildPayload(fields, values)
		created, err := s.Resource.Create(r.Context(), payload)
		if err != nil {
			slog.Error("create failed", "screen", s.Slug, "error", err)
			setFlash(w, "error", p.Sprintf("error.load"))
			http.Redirect(w, r, "/"+s.Slug, http.StatusSeeOther)
			return
		}

		h.record(r.Context(), "create", s.Slug, created.ID())
		setFlash(w, "success", p.Sprintf(s.TitleKey)+": "+p.Sprintf("button.add"))
		http.Redirect(w, r, "/"+s.Slug, http.StatusSeeOther)
	}
}

func (h *Handler) viewModal(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		id := chi.URLParam(r, "id")

		row, err := s.Resource.Get(r.Context(), id)
		if err != nil {
			slog.Error("detail load failed", "screen", s.Slug, "id", id, "error", err)
			http.Error(w, p.Sprintf("error.load"), http.StatusBadGateway)
			return
		}

		v := ui.View{
			Title:   p.Sprintf(s.TitleKey),
			Fields:  s.ViewFields,
			Row:     row,
			FileURL: h.files.URL,
		}
		ui.RenderPage(w, r, v.Component(p), nil)
	}
}

func (h *Handler) editForm(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		id := chi.URLParam(r, "id")

		row, err := s.Resource.Get(r.Context(), id)
		if err != nil {
			slog.Error("edit load failed", "screen", s.Slug, "id", id, "error", err)
			http.Error(w, p.Sprintf("error.load"), http.StatusBadGateway)
			return
		}

		fields := h.resolveOptions(r.Context(), s)
		f := ui.Form{
			Title:   p.Sprintf(s.TitleKey),
			Action:  "/" + s.Slug + "/" + id + "/edit",
			Fields:  fields,
			Values:  ui.SeedValues(fields, row),
			Files:   h.loadFileFields(r.Context(), fields, row),
			FileURL: h.files.URL,
		}
		ui.RenderPage(w, r, f.Component(p), nil)
	}
}

func (h *Handler) update(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		id := chi.URLParam(r, "id")

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		fields := h.resolveOptions(r.Context(), s)
		values := formValues(fields, r)
		action := "/" + s.Slug + "/" + id + "/edit"
		if errs := ui.Validate(fields, values, p); len(errs) > 0 {
			h.renderFormPage(w, r, s, fields, values, errs, action, p)
			return
		}

		current, err := s.Resource.Get(r.Context(), id)
		if err != nil {
			slog.Error("update preload failed", "screen", s.Slug, "id", id, "error", err)
			setFlash(w, "error", p.Sprintf("error.load"))
			http.Redirect(w, r, "/"+s.Slug, http.StatusSeeOther)
			return
		}

		// Only fields the operator actually changed go into the PATCH.
		payload := changedFields(fields, values, current)
		if len(payload) > 0 {
			if _, err := s.Resource.Update(r.Context(), id, payload); err != nil {
				slog.Error("update failed", "screen", s.Slug, "id", id, "error", err)
				setFlash(w, "error", p.Sprintf("error.load"))
				http.Redirect(w, r, "/"+s.Slug, http.StatusSeeOther)
				return
			}
			h.record(r.Context(), "update", s.Slug, id)
		}

		setFlash(w, "success", p.Sprintf(s.TitleKey)+": "+p.Sprintf("button.save"))
		http.Redirect(w, r, "/"+s.Slug, http.StatusSeeOther)
	}
}

func (h *Handler) confirmDelete(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		id := chi.URLParam(r, "id")
		c := ui.Confirm{
			Action: "/" + s.Slug + "/" + id + "/delete",
			Kind:   "danger",
		}
		ui.RenderPage(w, r, c.Component(p), nil)
	}
}

func (h *Handler) delete(s *Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.printer(r)
		id := chi.URLParam(r, "id")

		err := s.Resource.Delete(r.Context(), id)
		switch {
		case err == nil:
			h.record(r.Context(), "delete", s.Slug, id)
			setFlash(w, "success", p.Sprintf(s.TitleKey)+": "+p.Sprintf("button.delete"))
		case backend.IsNotFound(err):
			// Already gone; a repeated delete is not an incident.
			setFlash(w, "error", p.Sprintf("table.no_results"))
		default:
			slog.Error("delete failed", "screen", s.Slug, "id", id, "error", err)
			setFlash(w, "error", p.Sprintf("error.load"))
		}
		http.Redirect(w, r, "/"+s.Slug, http.StatusSeeOther)
	}
}

// renderFormPage renders a failed submission as a full page so the operator
// keeps their input and sees the field errors.
func (h *Handler) renderFormPage(w http.ResponseWriter, r *http.Request, s *Screen,
	fields []ui.FormField, values, errs map[string]string, action string, p *message.Printer) {
	f := ui.Form{
		Title:   p.Sprintf(s.TitleKey),
		Action:  action,
		Fields:  fields,
		Values:  values,
		Errors:  errs,
		Files:   map[string]*model.FileData{},
		FileURL: h.files.URL,
	}
	pg := ui.Page{
		Title:    p.Sprintf(s.TitleKey),
		Nav:      h.nav(p, s.Slug),
		Lang:     h.lang(r),
		Username: h.username(),
		Content:  f.Component(p),
	}
	ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pg.Component(p))
}

// resolveOptions copies the field spec with select options loaded. Option
// load failures leave the field's list empty rather than failing the page.
func (h *Handler) resolveOptions(ctx context.Context, s *Screen) []ui.FormField {
	if len(s.Options) == 0 {
		return s.FormFields
	}
	fields := make([]ui.FormField, len(s.FormFields))
	copy(fields, s.FormFields)
	for i, f := range fields {
		source, ok := s.Options[f.Name]
		if !ok {
			continue
		}
		opts, err := source(ctx)
		if err != nil {
			slog.Warn("option load failed", "screen", s.Slug, "field", f.Name, "error", err)
			continue
		}
		fields[i].Options = opts
	}
	return fields
}

// loadFileFields fetches metadata for file fields that hold an attachment
// ID, so the edit form can preview the current file.
func (h *Handler) loadFileFields(ctx context.Context, fields []ui.FormField, row model.Record) map[string]*model.FileData {
	files := make(map[string]*model.FileData)
	for _, f := range fields {
		if f.Kind != ui.FieldFile {
			continue
		}
		id := row.Str(f.Name)
		if id == "" {
			continue
		}
		fd, err := h.files.Get(ctx, id)
		if err != nil {
			slog.Warn("file metadata load failed", "field", f.Name, "id", id, "error", err)
			continue
		}
		files[f.Name] = &fd
	}
	return files
}

func (h *Handler) record(ctx context.Context, action, resource, id string) {
	if h.store == nil {
		return
	}
	err := h.store.RecordActivity(ctx, state.Activity{
		Actor:    h.username(),
		Action:   action,
		Resource: resource,
		RecordID: id,
	})
	if err != nil {
		slog.Warn("activity log write failed", "action", action, "resource", resource, "error", err)
	}
}

// formValues extracts the submitted value for every spec field. Unchecked
// checkboxes post nothing, so they normalize to "false".
func formValues(fields []ui.FormField, r *http.Request) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Kind == ui.FieldCheckbox {
			if r.PostFormValue(f.Name) == "true" {
				values[f.Name] = "true"
			} else {
				values[f.Name] = "false"
			}
			continue
		}
		values[f.Name] = strings.TrimSpace(r.PostFormValue(f.Name))
	}
	return values
}

// buildPayload converts submitted strings into the JSON types the backend
// expects: checkboxes become booleans, numeric fields numbers.
func buildPayload(fields []ui.FormField, values map[string]string) map[string]any {
	payload := make(map[string]any, len(fields))
	for _, f := range fields {
		payload[f.Name] = typedValue(f, values[f.Name])
	}
	return payload
}

// changedFields builds a partial payload holding only fields whose
// submitted value differs from the stored record.
func changedFields(fields []ui.FormField, values map[string]string, current model.Record) map[string]any {
	payload := make(map[string]any)
	for _, f := range fields {
		newVal := values[f.Name]
		oldVal := current.Str(f.Name)
		if f.Kind == ui.FieldCheckbox {
			oldVal = normalizeBool(oldVal)
		}
		if newVal == oldVal {
			continue
		}
		payload[f.Name] = typedValue(f, newVal)
	}
	return payload
}

func typedValue(f ui.FormField, v string) any {
	switch f.Kind {
	case ui.FieldCheckbox:
		return v == "true"
	case ui.FieldNumber:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
		if v == "" {
			return nil
		}
		return v
	case ui.FieldFile:
		if v == "" {
			return nil
		}
		return v
	default:
		return v
	}
}

func normalizeBool(v string) string {
	if v == "true" {
		return "true"
	}
	return "false"
}
