package model

// CreateQuestion is one quiz question in a bulk create payload. The
// category is carried once on the outer request, not per question.
type CreateQuestion struct {
	NameUz   string `json:"name_uz"`
	NameRu   string `json:"name_ru"`
	NameEn   string `json:"name_en"`
	NameArab string `json:"name_arab"`
}

// CreateQuestionsBulk is the payload for POST /questions/multiple.
type CreateQuestionsBulk struct {
	CategoryID string           `json:"category_id"`
	Questions  []CreateQuestion `json:"questions"`
}

// CreateAnswer is one answer option in a bulk create payload.
type CreateAnswer struct {
	TextUz    string `json:"text_uz"`
	TextRu    string `json:"text_ru"`
	TextEn    string `json:"text_en"`
	TextArab  string `json:"text_arab"`
	IsCorrect bool   `json:"is_correct"`
}

// CreateAnswersBulk is the payload for POST /answers/multiple.
type CreateAnswersBulk struct {
	QuestionID string         `json:"question_id"`
	Answers    []CreateAnswer `json:"answers"`
}
