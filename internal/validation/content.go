package validation

import (
	"fmt"
	"strings"

	"dsa-catalog/internal/domain"
)

// Report is the result of checking a category list and topic list together.
type Report struct {
	Errors     domain.ValidationErrors
	Warnings   domain.ValidationErrors
	TopicCount int
	QuizCount  int
}

// OK reports whether the content has no errors. Warnings do not fail a report.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// ValidateContent checks the whole collection: record-local rules of every
// topic and question, id uniqueness, category membership and the category
// list itself. Categories that no topic uses are reported as warnings.
func ValidateContent(categories []string, topics []*domain.Topic) *Report {
	report := &Report{TopicCount: len(topics)}

	known := make(map[string]bool, len(categories))
	for i, name := range categories {
		field := fmt.Sprintf("categories[%d]", i)
		if strings.TrimSpace(name) == "" {
			report.Errors = append(report.Errors, domain.NewMissingFieldError(field))
			continue
		}
		if len(name) > domain.MaxCategoryLength {
			report.Errors = append(report.Errors, domain.NewOutOfRangeError(field, len(name), 1, domain.MaxCategoryLength))
			continue
		}
		if known[name] {
			report.Errors = append(report.Errors, domain.NewDuplicateError(field, name))
			continue
		}
		known[name] = true
	}

	used := make(map[string]bool, len(categories))
	firstIndex := make(map[string]int, len(topics))
	for i, t := range topics {
		prefix := fmt.Sprintf("topics[%d]", i)
		if t == nil {
			report.Errors = append(report.Errors, domain.NewMissingFieldError(prefix))
			continue
		}
		report.QuizCount += len(t.QuizQuestions)
		report.Errors = append(report.Errors, t.Validate().Prefix(prefix)...)

		if t.ID != "" {
			if first, dup := firstIndex[t.ID]; dup {
				ve := domain.NewDuplicateError(prefix+".id", t.ID)
				ve.Message = fmt.Sprintf("id %q is already used by topics[%d]", t.ID, first)
				report.Errors = append(report.Errors, ve)
			} else {
				firstIndex[t.ID] = i
			}
			if !IsValidTopicID(t.ID) {
				report.Errors = append(report.Errors, domain.NewInvalidFormatError(prefix+".id", t.ID))
			}
		}

		if t.Category != "" {
			if known[t.Category] {
				used[t.Category] = true
			} else {
				report.Errors = append(report.Errors, domain.NewUnknownReferenceError(prefix+".category", t.Category))
			}
		}
	}

	for i, name := range categories {
		if known[name] && !used[name] {
			report.Warnings = append(report.Warnings, domain.ValidationError{
				Field:   fmt.Sprintf("categories[%d]", i),
				Code:    domain.CodeUnknownReference,
				Message: fmt.Sprintf("category %q has no topics", name),
				Value:   name,
			})
		}
	}

	return report
}
