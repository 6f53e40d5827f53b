package handler

import (
	"context"

	"github.com/a-h/templ"

	"github.com/ilmnur/admin-dashboard/internal/backend"
	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/ui"
)

// optionListCap bounds picker option loads; these lists are small in
// practice but the backend has no limit parameter on plain list calls.
const optionListCap = 500

// localeColumns builds the four language columns every resource shares.
func localeColumns(base, label string) []ui.Column {
	return []ui.Column{
		{Key: base + "_en", Label: label + " (EN)"},
		{Key: base + "_uz", Label: label + " (UZ)"},
		{Key: base + "_ru", Label: label + " (RU)"},
		{Key: base + "_arab", Label: label + " (Arab)"},
	}
}

// localeFields builds the four language inputs for a field group.
func localeFields(base, label, kind string) []ui.FormField {
	return []ui.FormField{
		{Name: base + "_en", Label: label + " (Inglizcha)", Kind: kind, Required: true},
		{Name: base + "_uz", Label: label + " (O'zbekcha)", Kind: kind, Required: true},
		{Name: base + "_ru", Label: label + " (Ruscha)", Kind: kind, Required: true},
		{Name: base + "_arab", Label: label + " (Arabcha)", Kind: kind, Required: true},
	}
}

func localeViewFields(base, label string, fullWidth bool) []ui.ViewField {
	return []ui.ViewField{
		{Key: base + "_en", Label: label + " (Inglizcha)", FullWidth: fullWidth},
		{Key: base + "_uz", Label: label + " (O'zbekcha)", FullWidth: fullWidth},
		{Key: base + "_ru", Label: label + " (Ruscha)", FullWidth: fullWidth},
		{Key: base + "_arab", Label: label + " (Arabcha)", FullWidth: fullWidth},
	}
}

// auditViewFields appends the shared id/active/timestamp detail rows.
func auditViewFields() []ui.ViewField {
	return []ui.ViewField{
		{Key: "id", Label: "ID"},
		{Key: "is_active", Label: "Faol", Render: ui.BoolCell},
		{Key: "created_at", Label: "Yaratilgan vaqti", Render: ui.DateCell},
		{Key: "updated_at", Label: "Yangilangan vaqti", Render: ui.DateCell},
	}
}

// pickerOptions loads a record list and formats it as select options,
// labelled "uzbek (english)" the way the SPA pickers did.
func pickerOptions(client *backend.Client, path, uzKey, enKey string) OptionSource {
	res := backend.NewResource[model.Record](client, path)
	return func(ctx context.Context) ([]ui.Option, error) {
		rows, err := res.List(ctx, backend.Query{PageSize: optionListCap})
		if err != nil {
			return nil, err
		}
		opts := make([]ui.Option, 0, len(rows))
		for _, row := range rows {
			label := row.Str(uzKey)
			if en := row.Str(enKey); en != "" {
				label += " (" + en + ")"
			}
			opts = append(opts, ui.Option{Value: row.ID(), Label: label})
		}
		return opts, nil
	}
}

// nestedName renders a nested relation (e.g. a question's category) by a
// locale key of the embedded record.
func nestedName(key string) func(value any, row model.Record) templ.Component {
	return func(value any, _ model.Record) templ.Component {
		if m, ok := value.(map[string]any); ok {
			return ui.Text(model.Record(m).Str(key))
		}
		return ui.Text(ui.FormatValue(value))
	}
}

// contentScreen builds the common title/text/file resource screen shared
// by duas, commentary, hadith and the pilgrimage ritual collections.
func contentScreen(client *backend.Client, slug, titleKey, path string, extra ...ui.FormField) *Screen {
	fields := localeFields("title", "Sarlavha", ui.FieldText)
	fields = append(fields, localeFields("text", "Matn", ui.FieldTextarea)...)
	fields = append(fields, ui.FormField{Name: "file_id", Label: "Fayl", Kind: ui.FieldFile})
	fields = append(fields, extra...)

	views := localeViewFields("title", "Sarlavha", false)
	views = append(views, localeViewFields("text", "Matn", true)...)
	views = append(views, ui.ViewField{Key: "file", Label: "Fayl", File: true})
	views = append(views, auditViewFields()...)

	return &Screen{
		Slug:       slug,
		TitleKey:   titleKey,
		FilterKey:  "title_uz",
		Columns:    localeColumns("title", "Sarlavha"),
		FormFields: fields,
		ViewFields: views,
		Resource:   backend.NewResource[model.Record](client, path),
	}
}

// chapterScreen builds a title-only chapter list (ilm and quran bob tabs).
func chapterScreen(client *backend.Client, slug, titleKey, path string) *Screen {
	return &Screen{
		Slug:       slug,
		TitleKey:   titleKey,
		FilterKey:  "title_uz",
		Columns:    localeColumns("title", "Sarlavha"),
		FormFields: localeFields("title", "Sarlavha", ui.FieldText),
		ViewFields: append(localeViewFields("title", "Sarlavha", false), auditViewFields()...),
		Resource:   backend.NewResource[model.Record](client, path),
	}
}

// screenRegistry declares every resource screen the dashboard serves.
func screenRegistry(client *backend.Client) []*Screen {
	categories := &Screen{
		Slug:       "category",
		TitleKey:   "nav.categories",
		FilterKey:  "name_en",
		Columns:    localeColumns("name", "Nomi"),
		FormFields: localeFields("name", "Nomi", ui.FieldText),
		ViewFields: append(localeViewFields("name", "Nomi", false), auditViewFields()...),
		Resource:   backend.NewResource[model.Record](client, "/category"),
	}

	questions := &Screen{
		Slug:      "questions",
		TitleKey:  "nav.questions",
		FilterKey: "name_uz",
		Columns:   localeColumns("name", "Savol"),
		FormFields: append(
			localeFields("name", "Savol", ui.FieldText),
			ui.FormField{Name: "category_id", Label: "Kategoriya", Kind: ui.FieldSearchSelect, Required: true},
		),
		ViewFields: append(
			append(
				localeViewFields("name", "Savol", false),
				ui.ViewField{Key: "category", Label: "Kategoriya", Render: nestedName("name_uz")},
			),
			auditViewFields()...,
		),
		Resource: backend.NewResource[model.Record](client, "/questions"),
		Options: map[string]OptionSource{
			"category_id": pickerOptions(client, "/category", "name_uz", "name_en"),
		},
		ExtraActions: []RowAction{{
			Label: "Javoblar",
			URL: func(row model.Record) string {
				return "/questions/" + row.ID() + "/answers"
			},
		}},
		ToolbarButtons: []ui.ToolbarButton{{
			Label: "Ko'p savol qo'shish",
			URL:   "/questions/bulk",
		}},
	}

	duas := contentScreen(client, "duas", "nav.duas", "/duas")

	quranIlm := contentScreen(client, "quran-ilm", "nav.quran_commentary", "/quran-ilm",
		ui.FormField{Name: "bob_id", Label: "Bob", Kind: ui.FieldSearchSelect, Required: true})
	quranIlm.Options = map[string]OptionSource{
		"bob_id": pickerOptions(client, "/quran-ilm-bob", "title_uz", "title_en"),
	}

	ilm := contentScreen(client, "ilm", "nav.ilm", "/ilm",
		ui.FormField{Name: "bob_id", Label: "Bob", Kind: ui.FieldSearchSelect, Required: true})
	ilm.Options = map[string]OptionSource{
		"bob_id": pickerOptions(client, "/ilm-bob", "title_uz", "title_en"),
	}

	news := &Screen{
		Slug:      "news",
		TitleKey:  "nav.news",
		FilterKey: "title_uz",
		Columns:   localeColumns("title", "Sarlavha"),
		FormFields: append(
			append(
				localeFields("title", "Sarlavha", ui.FieldText),
				localeFields("description", "Tavsif", ui.FieldTextarea)...,
			),
			ui.FormField{Name: "url", Label: "Havola", Kind: ui.FieldURL},
		),
		ViewFields: append(
			append(
				localeViewFields("title", "Sarlavha", false),
				append(
					localeViewFields("description", "Tavsif", true),
					ui.ViewField{Key: "url", Label: "Havola"},
				)...,
			),
			auditViewFields()...,
		),
		Resource: backend.NewResource[model.Record](client, "/admin/news",
			backend.WithPaginationPath[model.Record]("/admin/news/all/pagination")),
		ServerPaged: true,
		PageSize:    10,
	}

	return []*Screen{
		categories,
		questions,
		duas,
		quranIlm,
		chapterScreen(client, "quran-ilm-bob", "nav.quran_chapters", "/quran-ilm-bob"),
		ilm,
		chapterScreen(client, "ilm-bob", "nav.bob", "/ilm-bob"),
		contentScreen(client, "hadis", "nav.hadith", "/hadis"),
		contentScreen(client, "haj", "nav.haj", "/haj"),
		contentScreen(client, "umra", "nav.umra", "/umra"),
		news,
	}
}
