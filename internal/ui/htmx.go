package ui

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// hxRequestHeader marks requests issued by htmx, which expect a fragment
// rather than a full document.
const hxRequestHeader = "HX-Request"

// IsFragment reports whether the request wants a partial response.
func IsFragment(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(hxRequestHeader), "true")
}

// RenderPage writes fragment for htmx requests and full otherwise. A nil
// fragment falls back to the full page, and vice versa.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment, full templ.Component) {
	target := full
	if IsFragment(r) && fragment != nil {
		target = fragment
	}
	if target == nil {
		target = fragment
	}
	if target == nil {
		return
	}
	templ.Handler(target).ServeHTTP(w, r)
}

// RenderStatus renders a component with an explicit HTTP status, used for
// validation failures and error pages.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}
