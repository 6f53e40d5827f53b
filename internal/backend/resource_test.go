package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ilmnur/admin-dashboard/internal/model"
)

func TestResource_ListAndGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /category":
			writeEnvelope(w, http.StatusOK, []map[string]any{
				{"id": "c1", "name_uz": "Tahorat"},
				{"id": "c2", "name_uz": "Namoz"},
			})
		case "GET /category/c2":
			writeEnvelope(w, http.StatusOK, map[string]any{"id": "c2", "name_uz": "Namoz"})
		default:
			writeEnvelope(w, http.StatusNotFound, nil)
		}
	}))
	defer srv.Close()

	res := NewResource[model.Record](NewClient(srv.URL, &fakeTokens{access: "tok"}), "/category")

	rows, err := res.List(context.Background(), Query{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 || rows[0].ID() != "c1" {
		t.Errorf("List = %v, want two records starting at c1", rows)
	}

	row, err := res.Get(context.Background(), "c2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if row.Str("name_uz") != "Namoz" {
		t.Errorf("Get name_uz = %q, want Namoz", row.Str("name_uz"))
	}

	if _, err := res.Get(context.Background(), "missing"); !IsNotFound(err) {
		t.Errorf("Get(missing) error = %v, want not-found", err)
	}
}

func TestResource_PaginatedNormalizesEnvelope(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/news/all/pagination" {
			t.Errorf("path = %q, want the overridden pagination path", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"data":           []map[string]any{{"id": "n1"}, {"id": "n2"}},
			"total_elements": 23,
			"total_pages":    3,
			"page_size":      10,
			"current_page":   2,
			"from":           11,
			"to":             20,
			"status_code":    200,
			"message":        "OK",
		})
	}))
	defer srv.Close()

	res := NewResource[model.Record](NewClient(srv.URL, &fakeTokens{access: "tok"}), "/admin/news",
		WithPaginationPath[model.Record]("/admin/news/all/pagination"))

	page, err := res.Paginated(context.Background(), Query{Page: 2, PageSize: 10, Search: "eid"})
	if err != nil {
		t.Fatalf("Paginated: %v", err)
	}

	if page.Page != 2 || page.TotalPages != 3 || page.Total != 23 || len(page.Items) != 2 {
		t.Errorf("Page = %+v, want normalized backend values", page)
	}
	if gotQuery != "page=2&page_size=10&search=eid" {
		t.Errorf("query = %q, want page, page_size and search", gotQuery)
	}
}

func TestResource_CreateUpdateDelete(t *testing.T) {
	type call struct {
		method string
		path   string
		body   map[string]any
	}
	var calls []call

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if len(raw) > 0 {
			json.Unmarshal(raw, &body)
		}
		calls = append(calls, call{r.Method, r.URL.Path, body})
		writeEnvelope(w, http.StatusOK, map[string]any{"id": "d9"})
	}))
	defer srv.Close()

	res := NewResource[model.Record](NewClient(srv.URL, &fakeTokens{access: "tok"}), "/duas")

	created, err := res.Create(context.Background(), map[string]any{"title_uz": "Duo", "is_active": true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID() != "d9" {
		t.Errorf("created ID = %q, want d9", created.ID())
	}

	if _, err := res.Update(context.Background(), "d9", map[string]any{"title_uz": "Yangi"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := res.Delete(context.Background(), "d9"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if calls[0].method != http.MethodPost || calls[0].path != "/duas" {
		t.Errorf("create call = %+v", calls[0])
	}
	if calls[1].method != http.MethodPatch || calls[1].path != "/duas/d9" {
		t.Errorf("update call = %+v, want PATCH /duas/d9", calls[1])
	}
	if _, ok := calls[1].body["title_ru"]; ok {
		t.Error("update sent fields beyond the partial payload")
	}
	if calls[2].method != http.MethodDelete || calls[2].path != "/duas/d9" {
		t.Errorf("delete call = %+v, want DELETE /duas/d9", calls[2])
	}
}

func TestResource_CreateGetRoundTrip(t *testing.T) {
	records := map[string]map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/category":
			var in map[string]any
			json.NewDecoder(r.Body).Decode(&in)
			in["id"] = "c7"
			records["c7"] = in
			writeEnvelope(w, http.StatusCreated, in)
		case r.Method == http.MethodGet && r.URL.Path == "/category/c7":
			writeEnvelope(w, http.StatusOK, records["c7"])
		default:
			writeEnvelope(w, http.StatusNotFound, nil)
		}
	}))
	defer srv.Close()

	res := NewResource[model.Record](NewClient(srv.URL, &fakeTokens{access: "tok"}), "/category")

	in := map[string]any{
		"name_en":   "Prayer",
		"name_uz":   "Namoz",
		"name_ru":   "Молитва",
		"name_arab": "صلاة",
	}
	created, err := res.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := res.Get(context.Background(), created.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	for k, want := range in {
		if got.Str(k) != want {
			t.Errorf("round-trip %s = %q, want %q", k, got.Str(k), want)
		}
	}
}

func TestPost_BulkEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions/multiple" || r.Method != http.MethodPost {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var in model.CreateQuestionsBulk
		json.NewDecoder(r.Body).Decode(&in)
		if in.CategoryID != "c1" || len(in.Questions) != 2 {
			t.Errorf("payload = %+v, want category c1 with 2 questions", in)
		}
		writeEnvelope(w, http.StatusCreated, []map[string]any{{"id": "q1"}, {"id": "q2"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeTokens{access: "tok"})
	out, err := Post[[]model.Record](context.Background(), c, "/questions/multiple", model.CreateQuestionsBulk{
		CategoryID: "c1",
		Questions: []model.CreateQuestion{
			{NameUz: "Savol 1", NameRu: "q", NameEn: "q", NameArab: "q"},
			{NameUz: "Savol 2", NameRu: "q", NameEn: "q", NameArab: "q"},
		},
	})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("bulk create returned %d records, want 2", len(out))
	}
}

func TestFiles_URL(t *testing.T) {
	f := NewFiles(NewClient("https://api.example.com/", &fakeTokens{}))
	got := f.URL("2024/cover.png")
	want := "https://api.example.com/upload/2024/cover.png"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
