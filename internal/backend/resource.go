package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Query carries the optional list parameters the backend may honor.
type Query struct {
	Page     int
	PageSize int
	Search   string
	Lang     string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Lang != "" {
		v.Set("lang", q.Lang)
	}
	if len(v) == 0 {
		return nil
	}
	return v
}

// envelope is the uniform wrapper every backend response is packaged in.
type envelope[T any] struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

// pagedEnvelope is the backend's paginated list wrapper.
type pagedEnvelope[T any] struct {
	Data          []T    `json:"data"`
	TotalElements int    `json:"total_elements"`
	TotalPages    int    `json:"total_pages"`
	PageSize      int    `json:"page_size"`
	CurrentPage   int    `json:"current_page"`
	From          int    `json:"from"`
	To            int    `json:"to"`
	StatusCode    int    `json:"status_code"`
	Message       string `json:"message"`
}

// Page is the normalized paginated result shape. Downstream code depends
// only on this, never on the backend's field naming. Page is 1-indexed and
// TotalPages is trusted from the backend, not recomputed.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Resource provides the standard operation set over one backend collection,
// so each new resource type requires zero new HTTP-handling code.
type Resource[T any] struct {
	client    *Client
	base      string
	pagedPath string
}

// ResourceOption adjusts resource construction.
type ResourceOption[T any] func(*Resource[T])

// WithPaginationPath overrides the default "<base>/pagination" sub-path.
// The news collection, for one, paginates at "all/pagination".
func WithPaginationPath[T any](path string) ResourceOption[T] {
	return func(r *Resource[T]) {
		r.pagedPath = strings.TrimLeft(path, "/")
	}
}

// NewResource creates the operation set for the collection at base,
// e.g. "category" or "duas".
func NewResource[T any](c *Client, base string, opts ...ResourceOption[T]) *Resource[T] {
	r := &Resource[T]{
		client:    c,
		base:      strings.Trim(base, "/"),
		pagedPath: strings.Trim(base, "/") + "/pagination",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List fetches the unpaginated collection.
func (r *Resource[T]) List(ctx context.Context, q Query) ([]T, error) {
	var env envelope[[]T]
	if err := r.client.Do(ctx, http.MethodGet, r.base, q.values(), nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Paginated fetches one page and normalizes the backend's envelope.
func (r *Resource[T]) Paginated(ctx context.Context, q Query) (Page[T], error) {
	var env pagedEnvelope[T]
	if err := r.client.Do(ctx, http.MethodGet, r.pagedPath, q.values(), nil, &env); err != nil {
		return Page[T]{}, err
	}
	return Page[T]{
		Items:      env.Data,
		Total:      env.TotalElements,
		Page:       env.CurrentPage,
		PageSize:   env.PageSize,
		TotalPages: env.TotalPages,
	}, nil
}

// Get fetches a single record; a missing record surfaces as ErrNotFound.
func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var env envelope[T]
	if err := r.client.Do(ctx, http.MethodGet, r.base+"/"+url.PathEscape(id), nil, nil, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// Create posts a new record and returns the server-assigned full record.
func (r *Resource[T]) Create(ctx context.Context, item any) (T, error) {
	var env envelope[T]
	if err := r.client.Do(ctx, http.MethodPost, r.base, nil, item, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// Update patches only the supplied fields and returns the updated record.
func (r *Resource[T]) Update(ctx context.Context, id string, partial any) (T, error) {
	var env envelope[T]
	if err := r.client.Do(ctx, http.MethodPatch, r.base+"/"+url.PathEscape(id), nil, partial, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// Delete removes a record. The caller is responsible for refreshing any
// list it is holding.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.base+"/"+url.PathEscape(id), nil, nil, nil)
}

// Post is the extension point for bespoke sub-path operations, such as the
// bulk create endpoints some resources expose. It unwraps the standard
// envelope like the generic operations do.
func Post[T any](ctx context.Context, c *Client, path string, in any) (T, error) {
	var env envelope[T]
	if err := c.Do(ctx, http.MethodPost, path, nil, in, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}
