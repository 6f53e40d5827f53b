package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/message"

	"github.com/ilmnur/admin-dashboard/internal/backend"
	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/ui"
)

// Bulk forms render a fixed number of row groups; rows left fully empty
// are skipped on submit.
const (
	bulkQuestionRows = 5
	bulkAnswerRows   = 4
)

var questionLangs = []struct {
	suffix string
	label  string
}{
	{"uz", "O'zbekcha"},
	{"ru", "Ruscha"},
	{"en", "Inglizcha"},
	{"arab", "Arabcha"},
}

func (h *Handler) questionsScreen() *Screen {
	for _, s := range h.screens {
		if s.Slug == "questions" {
			return s
		}
	}
	return nil
}

// bulkQuestionFields builds the indexed field spec for the bulk form: one
// category picker plus N groups of four language inputs.
func bulkQuestionFields() []ui.FormField {
	fields := []ui.FormField{
		{Name: "category_id", Label: "Kategoriya", Kind: ui.FieldSearchSelect, Required: true},
	}
	for i := 0; i < bulkQuestionRows; i++ {
		for _, lang := range questionLangs {
			fields = append(fields, ui.FormField{
				Name:  fmt.Sprintf("q%d_name_%s", i, lang.suffix),
				Label: fmt.Sprintf("Savol %d (%s)", i+1, lang.label),
			})
		}
	}
	return fields
}

func bulkAnswerFields() []ui.FormField {
	var fields []ui.FormField
	for i := 0; i < bulkAnswerRows; i++ {
		for _, lang := range questionLangs {
			fields = append(fields, ui.FormField{
				Name:  fmt.Sprintf("a%d_text_%s", i, lang.suffix),
				Label: fmt.Sprintf("Javob %d (%s)", i+1, lang.label),
			})
		}
		fields = append(fields, ui.FormField{
			Name:  fmt.Sprintf("a%d_is_correct", i),
			Label: fmt.Sprintf("Javob %d to'g'ri", i+1),
			Kind:  ui.FieldCheckbox,
		})
	}
	return fields
}

func (h *Handler) handleQuestionsBulkForm(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	s := h.questionsScreen()

	fields := bulkQuestionFields()
	if s != nil {
		if source, ok := s.Options["category_id"]; ok {
			if opts, err := source(r.Context()); err == nil {
				fields[0].Options = opts
			} else {
				slog.Warn("option load failed", "field", "category_id", "error", err)
			}
		}
	}

	f := ui.Form{
		Title:  "Ko'p savol qo'shish",
		Action: "/questions/bulk",
		Fields: fields,
		Values: ui.SeedValues(fields, nil),
	}
	ui.RenderPage(w, r, f.Component(p), nil)
}

func (h *Handler) handleQuestionsBulkCreate(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	categoryID := strings.TrimSpace(r.PostFormValue("category_id"))
	questions, rowErrs := collectQuestionRows(r, p)
	errs := map[string]string{}
	for k, v := range rowErrs {
		errs[k] = v
	}
	if categoryID == "" {
		errs["category_id"] = p.Sprintf("form.required", "Kategoriya")
	}
	if len(questions) == 0 && len(errs) == 0 {
		errs["q0_name_uz"] = p.Sprintf("form.required", "Savol 1")
	}

	if len(errs) > 0 {
		fields := bulkQuestionFields()
		if s := h.questionsScreen(); s != nil {
			if source, ok := s.Options["category_id"]; ok {
				if opts, err := source(r.Context()); err == nil {
					fields[0].Options = opts
				}
			}
		}
		h.renderBulkErrors(w, r, "/questions/bulk", "Ko'p savol qo'shish", fields, r.PostForm, errs, p)
		return
	}

	payload := model.CreateQuestionsBulk{CategoryID: categoryID, Questions: questions}
	if _, err := backend.Post[[]model.Record](r.Context(), h.client, "/questions/multiple", payload); err != nil {
		slog.Error("bulk question create failed", "count", len(questions), "error", err)
		setFlash(w, "error", p.Sprintf("error.load"))
		http.Redirect(w, r, "/questions", http.StatusSeeOther)
		return
	}

	h.record(r.Context(), "create", "questions", fmt.Sprintf("bulk:%d", len(questions)))
	setFlash(w, "success", p.Sprintf("nav.questions")+": "+p.Sprintf("button.add"))
	http.Redirect(w, r, "/questions", http.StatusSeeOther)
}

// collectQuestionRows gathers the non-empty question rows. A row with some
// languages filled and others blank is an error.
func collectQuestionRows(r *http.Request, p *message.Printer) ([]model.CreateQuestion, map[string]string) {
	var questions []model.CreateQuestion
	errs := map[string]string{}

	for i := 0; i < bulkQuestionRows; i++ {
		prefix := fmt.Sprintf("q%d_name_", i)
		q := model.CreateQuestion{
			NameUz:   strings.TrimSpace(r.PostFormValue(prefix + "uz")),
			NameRu:   strings.TrimSpace(r.PostFormValue(prefix + "ru")),
			NameEn:   strings.TrimSpace(r.PostFormValue(prefix + "en")),
			NameArab: strings.TrimSpace(r.PostFormValue(prefix + "arab")),
		}
		filled := 0
		for _, v := range []string{q.NameUz, q.NameRu, q.NameEn, q.NameArab} {
			if v != "" {
				filled++
			}
		}
		if filled == 0 {
			continue
		}
		if filled < 4 {
			for _, lang := range questionLangs {
				if strings.TrimSpace(r.PostFormValue(prefix+lang.suffix)) == "" {
					errs[prefix+lang.suffix] = p.Sprintf("form.required", fmt.Sprintf("Savol %d (%s)", i+1, lang.label))
				}
			}
			continue
		}
		questions = append(questions, q)
	}
	return questions, errs
}

func (h *Handler) handleAnswersForm(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	id := chi.URLParam(r, "id")

	fields := bulkAnswerFields()
	f := ui.Form{
		Title:  "Javoblar qo'shish",
		Action: "/questions/" + id + "/answers",
		Fields: fields,
		Values: ui.SeedValues(fields, nil),
	}
	ui.RenderPage(w, r, f.Component(p), nil)
}

func (h *Handler) handleAnswersCreate(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	var answers []model.CreateAnswer
	errs := map[string]string{}
	for i := 0; i < bulkAnswerRows; i++ {
		prefix := fmt.Sprintf("a%d_text_", i)
		a := model.CreateAnswer{
			TextUz:    strings.TrimSpace(r.PostFormValue(prefix + "uz")),
			TextRu:    strings.TrimSpace(r.PostFormValue(prefix + "ru")),
			TextEn:    strings.TrimSpace(r.PostFormValue(prefix + "en")),
			TextArab:  strings.TrimSpace(r.PostFormValue(prefix + "arab")),
			IsCorrect: r.PostFormValue(fmt.Sprintf("a%d_is_correct", i)) == "true",
		}
		filled := 0
		for _, v := range []string{a.TextUz, a.TextRu, a.TextEn, a.TextArab} {
			if v != "" {
				filled++
			}
		}
		if filled == 0 {
			continue
		}
		if filled < 4 {
			for _, lang := range questionLangs {
				if strings.TrimSpace(r.PostFormValue(prefix+lang.suffix)) == "" {
					errs[prefix+lang.suffix] = p.Sprintf("form.required", fmt.Sprintf("Javob %d (%s)", i+1, lang.label))
				}
			}
			continue
		}
		answers = append(answers, a)
	}

	if len(answers) == 0 && len(errs) == 0 {
		errs["a0_text_uz"] = p.Sprintf("form.required", "Javob 1")
	}
	if len(errs) > 0 {
		h.renderBulkErrors(w, r, "/questions/"+id+"/answers", "Javoblar qo'shish", bulkAnswerFields(), r.PostForm, errs, p)
		return
	}

	payload := model.CreateAnswersBulk{QuestionID: id, Answers: answers}
	if _, err := backend.Post[[]model.Record](r.Context(), h.client, "/answers/multiple", payload); err != nil {
		slog.Error("bulk answer create failed", "question", id, "count", len(answers), "error", err)
		setFlash(w, "error", p.Sprintf("error.load"))
		http.Redirect(w, r, "/questions", http.StatusSeeOther)
		return
	}

	h.record(r.Context(), "create", "answers", id)
	setFlash(w, "success", p.Sprintf("nav.questions")+": "+p.Sprintf("button.add"))
	http.Redirect(w, r, "/questions", http.StatusSeeOther)
}

// renderBulkErrors re-renders a bulk form full-page with the submitted
// values and field errors.
func (h *Handler) renderBulkErrors(w http.ResponseWriter, r *http.Request, action, title string,
	fields []ui.FormField, submitted map[string][]string, errs map[string]string, p *message.Printer) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if vs, ok := submitted[f.Name]; ok && len(vs) > 0 {
			values[f.Name] = vs[0]
		}
	}
	f := ui.Form{
		Title:  title,
		Action: action,
		Fields: fields,
		Values: values,
		Errors: errs,
	}
	pg := ui.Page{
		Title:    title,
		Nav:      h.nav(p, "questions"),
		Lang:     h.lang(r),
		Username: h.username(),
		Content:  f.Component(p),
	}
	ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pg.Component(p))
}
