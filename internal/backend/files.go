package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/ilmnur/admin-dashboard/internal/model"
)

// maxUploadSize caps buffered multipart uploads at 50MB.
const maxUploadSize = 50 << 20

// Files wraps the backend's file endpoints: multipart upload, metadata
// lookup, deletion, and the derived content URL used for previews.
type Files struct {
	client *Client
}

// NewFiles creates the file API over an authenticated client.
func NewFiles(c *Client) *Files {
	return &Files{client: c}
}

// Upload posts the file as multipart form data to POST /file and returns
// the stored metadata. The body is buffered so the auth-refresh replay can
// resend it byte for byte.
func (f *Files) Upload(ctx context.Context, filename string, r io.Reader) (model.FileData, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return model.FileData{}, fmt.Errorf("create multipart field: %w", err)
	}
	n, err := io.Copy(part, io.LimitReader(r, maxUploadSize+1))
	if err != nil {
		return model.FileData{}, fmt.Errorf("buffer upload: %w", err)
	}
	if n > maxUploadSize {
		return model.FileData{}, fmt.Errorf("file %q exceeds the %d byte upload limit", filename, maxUploadSize)
	}
	if err := mw.Close(); err != nil {
		return model.FileData{}, err
	}

	var env envelope[model.FileData]
	if err := f.client.roundTrip(ctx, http.MethodPost, "/file", nil, buf.Bytes(), mw.FormDataContentType(), &env); err != nil {
		return model.FileData{}, err
	}
	return env.Data, nil
}

// Get fetches stored-file metadata by id.
func (f *Files) Get(ctx context.Context, id string) (model.FileData, error) {
	var env envelope[model.FileData]
	if err := f.client.Do(ctx, http.MethodGet, "/file/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return model.FileData{}, err
	}
	return env.Data, nil
}

// Delete removes a stored file. Used best-effort when a form field's
// upload is replaced or cleared.
func (f *Files) Delete(ctx context.Context, id string) error {
	return f.client.Do(ctx, http.MethodDelete, "/file/"+url.PathEscape(id), nil, nil, nil)
}

// URL derives the public content URL for a stored file path.
func (f *Files) URL(path string) string {
	return f.client.BaseURL() + "/upload/" + path
}
