package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilmnur/admin-dashboard/internal/ui"
)

const maxUploadBytes = 50 << 20

// fileField finds the file field spec with the given name across the
// screen registry, so upload fragments keep the field's label.
func (h *Handler) fileField(name string) (ui.FormField, bool) {
	for _, s := range h.screens {
		for _, f := range s.FormFields {
			if f.Kind == ui.FieldFile && f.Name == name {
				return f, true
			}
		}
	}
	return ui.FormField{}, false
}

// handleFileUpload proxies a form file upload to the backend and swaps the
// field's fragment with the stored attachment.
func (h *Handler) handleFileUpload(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)

	field, ok := h.fileField(r.URL.Query().Get("field"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}
	src, header, err := r.FormFile("upload")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer src.Close()

	fd, err := h.files.Upload(r.Context(), header.Filename, src)
	if err != nil {
		slog.Error("file upload failed", "field", field.Name, "error", err)
		http.Error(w, p.Sprintf("error.load"), http.StatusBadGateway)
		return
	}

	h.record(r.Context(), "upload", "file", fd.ID)
	fragment := ui.FileFieldFragment(field, fd.ID, &fd, h.files.URL, p)
	ui.RenderPage(w, r, fragment, nil)
}

// handleFileRemove deletes a stored file and resets the field fragment to
// an empty upload input.
func (h *Handler) handleFileRemove(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	id := chi.URLParam(r, "id")

	field, ok := h.fileField(r.URL.Query().Get("field"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.files.Delete(r.Context(), id); err != nil {
		slog.Error("file delete failed", "id", id, "error", err)
		http.Error(w, p.Sprintf("error.load"), http.StatusBadGateway)
		return
	}

	h.record(r.Context(), "delete", "file", id)
	fragment := ui.FileFieldFragment(field, "", nil, h.files.URL, p)
	ui.RenderPage(w, r, fragment, nil)
}
