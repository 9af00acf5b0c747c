package dto

import "dsa-catalog/internal/domain"

// CategoryResponse represents a category in the API response
// @Description Category with the number of topics and quiz questions filed under it
type CategoryResponse struct {
	Name       string `json:"name"`
	Position   int    `json:"position"`
	TopicCount int    `json:"topic_count"`
	QuizCount  int    `json:"quiz_count"`
}

// CategoryListResponse wraps the ordered category list
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// TopicSummary is the listing view of a topic
// @Description Topic identity without its long-form content
type TopicSummary struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Sections      []string `json:"sections"`
	QuizQuestions int      `json:"quiz_questions"`
}

// TopicListResponse represents every topic in catalog order
type TopicListResponse struct {
	Topics []TopicSummary `json:"topics"`
	Total  int            `json:"total"`
}

// TopicResponse is the full topic. The embedded record keeps the camelCase
// field names the UI imports; Sections lists which optional fields are present.
// @Description Full topic record
type TopicResponse struct {
	*domain.Topic
	Sections []string `json:"sections"`
}

// QuizQuestionResponse represents one multiple-choice question
type QuizQuestionResponse struct {
	Position      int      `json:"position"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuizResponse represents the quiz of one topic
// @Description Quiz questions of a topic; empty when the topic has none
type QuizResponse struct {
	TopicID   string                 `json:"topic_id"`
	Title     string                 `json:"title"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// ValidationIssue is one validation finding
type ValidationIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationReportResponse represents the content validation report
type ValidationReportResponse struct {
	Valid      bool              `json:"valid"`
	TopicCount int               `json:"topic_count"`
	QuizCount  int               `json:"quiz_count"`
	Errors     []ValidationIssue `json:"errors"`
	Warnings   []ValidationIssue `json:"warnings"`
}

// HealthResponse represents the health check result
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// NewTopicSummary builds the listing view of t.
func NewTopicSummary(t *domain.Topic) TopicSummary {
	return TopicSummary{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		Difficulty:    string(t.Difficulty),
		Sections:      SectionNames(t),
		QuizQuestions: len(t.QuizQuestions),
	}
}

// NewTopicResponse builds the full view of t.
func NewTopicResponse(t *domain.Topic) *TopicResponse {
	return &TopicResponse{Topic: t, Sections: SectionNames(t)}
}

// NewQuizResponse builds the quiz view of t.
func NewQuizResponse(t *domain.Topic) *QuizResponse {
	resp := &QuizResponse{
		TopicID:   t.ID,
		Title:     t.Title,
		Questions: make([]QuizQuestionResponse, len(t.QuizQuestions)),
	}
	for i, q := range t.QuizQuestions {
		resp.Questions[i] = QuizQuestionResponse{
			Position:      i,
			Question:      q.Question,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	return resp
}

// SectionNames lists the optional sections present on t, in display order.
func SectionNames(t *domain.Topic) []string {
	sections := t.Sections()
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}

// NewValidationIssues converts validation errors to their response form.
func NewValidationIssues(errs domain.ValidationErrors) []ValidationIssue {
	issues := make([]ValidationIssue, len(errs))
	for i, e := range errs {
		issues[i] = ValidationIssue{Field: e.Field, Code: string(e.Code), Message: e.Message}
	}
	return issues
}
