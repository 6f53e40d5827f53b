package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/ilmnur/admin-dashboard/internal/i18n"
	"github.com/ilmnur/admin-dashboard/internal/model"
)

func sampleRows() []model.Record {
	return []model.Record{
		{"id": float64(1), "name_uz": "Tahorat"},
		{"id": float64(2), "name_uz": "Namoz"},
		{"id": float64(3), "name_uz": "Ro'za"},
		{"id": float64(4), "name_uz": "Zakot"},
		{"id": float64(5), "name_uz": "Haj"},
		{"id": float64(6), "name_uz": "Niyat"},
	}
}

func TestFilterRows(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name   string
		key    string
		filter string
		want   int
	}{
		{"empty filter returns all", "name_uz", "", 6},
		{"empty key returns all", "", "namoz", 6},
		{"case-insensitive match", "name_uz", "NAMOZ", 1},
		{"substring match", "name_uz", "z", 3},
		{"no match", "name_uz", "yo'q", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRows(rows, tt.key, tt.filter)
			if len(got) != tt.want {
				t.Errorf("FilterRows(%q, %q) returned %d rows, want %d", tt.key, tt.filter, len(got), tt.want)
			}
		})
	}

	if len(rows) != 6 {
		t.Errorf("FilterRows mutated its input, now %d rows", len(rows))
	}
}

func TestPageSlice(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name      string
		page      int
		perPage   int
		wantLen   int
		wantPages int
		wantFirst string
	}{
		{"first page", 1, 5, 5, 2, "Tahorat"},
		{"second page remainder", 2, 5, 1, 2, "Niyat"},
		{"page past end clamps empty", 9, 5, 0, 2, ""},
		{"zero page treated as first", 0, 5, 5, 2, "Tahorat"},
		{"no rows", 1, 5, 0, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := rows
			if tt.name == "no rows" {
				in = nil
			}
			got, pages := PageSlice(in, tt.page, tt.perPage)
			if len(got) != tt.wantLen {
				t.Fatalf("PageSlice page %d returned %d rows, want %d", tt.page, len(got), tt.wantLen)
			}
			if pages != tt.wantPages {
				t.Errorf("PageSlice page %d reported %d pages, want %d", tt.page, pages, tt.wantPages)
			}
			if tt.wantFirst != "" && got[0].Str("name_uz") != tt.wantFirst {
				t.Errorf("first row = %q, want %q", got[0].Str("name_uz"), tt.wantFirst)
			}
		})
	}
}

func renderComponent(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestTableComponentEmptyState(t *testing.T) {
	p := i18n.Printer("uz")
	tbl := Table{
		Columns:   []Column{{Key: "name_uz", Label: "Nomi"}},
		Rows:      nil,
		FilterKey: "name_uz",
		ReloadURL: "/category/table",
	}

	out := renderComponent(t, tbl.Component(p))

	if !strings.Contains(out, "Natijalar topilmadi") {
		t.Errorf("empty table missing no-results row:\n%s", out)
	}
	if !strings.Contains(out, `id="table-region"`) {
		t.Errorf("table missing region wrapper")
	}
}

func TestTableComponentSearchBox(t *testing.T) {
	p := i18n.Printer("uz")

	local := Table{
		Columns:   []Column{{Key: "name_uz", Label: "Nomi"}},
		Rows:      sampleRows(),
		FilterKey: "name_uz",
		ReloadURL: "/category/table",
	}
	out1 := renderComponent(t, local.Component(p))
	if !strings.Contains(out1, `hx-trigger="input changed delay:500ms"`) {
		t.Errorf("local-filter table missing debounced search input")
	}

	server := Table{
		Columns:      []Column{{Key: "title_uz", Label: "Sarlavha"}},
		Rows:         sampleRows(),
		HideFilter:   true,
		HidePaging:   true,
		ServerSearch: true,
		ReloadURL:    "/news/table",
		Page:         2,
		TotalPages:   4,
	}
	out2 := renderComponent(t, server.Component(p))
	if !strings.Contains(out2, `name="search"`) {
		t.Errorf("server-search table missing search input")
	}
	if !strings.Contains(out2, "Sahifa 2 / 4") {
		t.Errorf("server-paged table missing page label:\n%s", out2)
	}
}
