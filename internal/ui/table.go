package ui

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/ilmnur/admin-dashboard/internal/model"
)

// defaultItemsPerPage matches the table's built-in page size.
const defaultItemsPerPage = 5

// Column describes one table column. Render, when set, replaces the default
// stringified cell value.
type Column struct {
	Key    string
	Label  string
	Render func(value any, row model.Record) templ.Component
}

// Action is one row-level button. Its URL is fetched into the modal region.
type Action struct {
	Label string
	Class string
	URL   func(row model.Record) string
}

// Table renders an arbitrary record sequence against a column spec. Local
// filtering and local pagination are independent and can each be disabled
// when the screen delegates them to a server-paginated fetch; in that case
// Page and TotalPages carry the server's cursor.
type Table struct {
	Columns      []Column
	Rows         []model.Record
	Actions      []Action
	FilterKey    string
	ItemsPerPage int
	HideFilter   bool
	HidePaging   bool

	// ServerSearch keeps the search box visible when local filtering is
	// off because the screen forwards the search term to the backend.
	ServerSearch bool

	// ReloadURL is the htmx endpoint that re-renders this table; search and
	// page state travel as its query parameters.
	ReloadURL  string
	Filter     string
	Page       int
	TotalPages int
}

// FilterRows returns the rows whose stringified value at key contains the
// filter as a case-insensitive substring. An empty filter returns rows
// unchanged. The input slice is never mutated.
func FilterRows(rows []model.Record, key, filter string) []model.Record {
	if key == "" || strings.TrimSpace(filter) == "" {
		return rows
	}
	needle := strings.ToLower(filter)
	out := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Str(key)), needle) {
			out = append(out, row)
		}
	}
	return out
}

// PageSlice cuts rows into 1-indexed pages of size perPage and reports the
// page count (at least 1). An out-of-range page yields an empty slice.
func PageSlice(rows []model.Record, page, perPage int) ([]model.Record, int) {
	if perPage <= 0 {
		perPage = defaultItemsPerPage
	}
	totalPages := (len(rows) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(rows) {
		return nil, totalPages
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}

// Component renders the table region, including its filter box and pager.
func (t Table) Component(p *message.Printer) templ.Component {
	rows := t.Rows
	page := t.Page
	totalPages := t.TotalPages

	if !t.HideFilter {
		rows = FilterRows(rows, t.FilterKey, t.Filter)
	}
	if !t.HidePaging {
		rows, totalPages = PageSlice(rows, page, t.ItemsPerPage)
	}
	if page < 1 {
		page = 1
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return component(func(b *writer) {
		b.p(`<div id="table-region">`)

		if (t.FilterKey != "" && !t.HideFilter) || t.ServerSearch {
			// Server-side screens keep the search box with local
			// filtering off; the 500ms delay debounces keystrokes.
			b.p(`<div class="table-filter"><input type="search" name="search" value="%s" placeholder="%s"`+
				` hx-get="%s" hx-trigger="input changed delay:500ms" hx-target="#table-region" hx-swap="outerHTML"></div>`,
				esc(t.Filter), esc(p.Sprintf("table.search")), esc(t.ReloadURL))
		}

		b.p(`<table class="data-table"><thead><tr>`)
		for _, col := range t.Columns {
			b.p(`<th>%s</th>`, esc(col.Label))
		}
		if len(t.Actions) > 0 {
			b.p(`<th class="actions">%s</th>`, esc(p.Sprintf("table.actions")))
		}
		b.p(`</tr></thead><tbody>`)

		if len(rows) == 0 {
			span := len(t.Columns)
			if len(t.Actions) > 0 {
				span++
			}
			b.p(`<tr><td colspan="%d" class="empty">%s</td></tr>`, span, esc(p.Sprintf("table.no_results")))
		}

		for _, row := range rows {
			b.p(`<tr>`)
			for _, col := range t.Columns {
				b.p(`<td>`)
				if col.Render != nil {
					b.renderChild(col.Render(row[col.Key], row))
				} else {
					b.raw(esc(row.Str(col.Key)))
				}
				b.p(`</td>`)
			}
			if len(t.Actions) > 0 {
				b.p(`<td class="actions">`)
				for _, a := range t.Actions {
					b.p(`<button class="%s" hx-get="%s" hx-target="#modal" hx-swap="innerHTML">%s</button>`,
						esc(a.Class), esc(a.URL(row)), esc(a.Label))
				}
				b.p(`</td>`)
			}
			b.p(`</tr>`)
		}
		b.p(`</tbody></table>`)

		b.p(`<div class="pagination">`)
		b.pagerButton(p.Sprintf("table.prev"), t.ReloadURL, t.Filter, page-1, page == 1)
		b.p(`<span>%s</span>`, esc(p.Sprintf("table.page", page, totalPages)))
		b.pagerButton(p.Sprintf("table.next"), t.ReloadURL, t.Filter, page+1, page == totalPages)
		b.p(`</div>`)

		b.p(`</div>`)
	})
}

func (b *writer) pagerButton(label, reloadURL, filter string, page int, disabled bool) {
	if disabled {
		b.p(`<button disabled>%s</button>`, esc(label))
		return
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if filter != "" {
		q.Set("search", filter)
	}
	b.p(`<button hx-get="%s?%s" hx-target="#table-region" hx-swap="outerHTML">%s</button>`,
		esc(reloadURL), esc(q.Encode()), esc(label))
}

func (b *writer) renderChild(c templ.Component) {
	if b.err != nil || c == nil {
		return
	}
	b.err = c.Render(context.Background(), b.w)
}
