package domain

import (
	"fmt"
	"strings"
)

// Difficulty is the learning level of a topic.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Difficulties lists the known levels from easiest to hardest.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// ParseDifficulty converts a case-insensitive level name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner, nil
	case "intermediate":
		return DifficultyIntermediate, nil
	case "advanced":
		return DifficultyAdvanced, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// QuizQuestion is one multiple-choice question. CorrectAnswer indexes Options.
type QuizQuestion struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correctAnswer" yaml:"correctAnswer"`
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

// Validate checks the question on its own. Field paths are relative.
func (q *QuizQuestion) Validate() ValidationErrors {
	var errs ValidationErrors
	if ve := checkRequired("question", q.Question, MaxQuestionLength); ve != nil {
		errs = append(errs, *ve)
	}
	if len(q.Options) < 2 {
		errs = append(errs, NewOutOfRangeError("options", len(q.Options), 2, MaxQuizOptions))
	} else if len(q.Options) > MaxQuizOptions {
		errs = append(errs, NewOutOfRangeError("options", len(q.Options), 2, MaxQuizOptions))
	}
	seen := make(map[string]int, len(q.Options))
	for i, opt := range q.Options {
		field := fmt.Sprintf("options[%d]", i)
		if strings.TrimSpace(opt) == "" {
			errs = append(errs, NewMissingFieldError(field))
			continue
		}
		if _, dup := seen[opt]; dup {
			errs = append(errs, NewDuplicateError(field, opt))
		}
		seen[opt] = i
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		errs = append(errs, NewOutOfRangeError("correctAnswer", q.CorrectAnswer, 0, len(q.Options)-1))
	}
	if len(q.Explanation) > MaxExplanationLength {
		errs = append(errs, NewOutOfRangeError("explanation", len(q.Explanation), 0, MaxExplanationLength))
	}
	return errs
}

// CorrectOption returns the text of the correct option, or "" when the index is out of bounds.
func (q *QuizQuestion) CorrectOption() string {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectAnswer]
}

// MaxQuizOptions caps the number of choices a question may offer.
const MaxQuizOptions = 6

// Byte limits of the text columns the relational store keeps them in.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxCategoryLength    = 100
	MaxQuestionLength    = 2000
	MaxExplanationLength = 4000
)

// checkRequired reports a blank value as missing and an oversized one as out of range.
func checkRequired(field, value string, limit int) *ValidationError {
	if strings.TrimSpace(value) == "" {
		ve := NewMissingFieldError(field)
		return &ve
	}
	if len(value) > limit {
		ve := NewOutOfRangeError(field, len(value), 1, limit)
		ve.Message = fmt.Sprintf("%s is %d bytes, at most %d are allowed", field, len(value), limit)
		return &ve
	}
	return nil
}

// Topic is one catalog entry. Everything after Difficulty is optional and
// omitted from JSON when empty.
type Topic struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Category    string     `json:"category" yaml:"category"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`

	ExtendedDefinition    string         `json:"extendedDefinition,omitempty" yaml:"extendedDefinition,omitempty"`
	Example               string         `json:"example,omitempty" yaml:"example,omitempty"`
	Syntax                string         `json:"syntax,omitempty" yaml:"syntax,omitempty"`
	VoiceExplanation      string         `json:"voiceExplanation,omitempty" yaml:"voiceExplanation,omitempty"`
	RealWorldApplications string         `json:"realWorldApplications,omitempty" yaml:"realWorldApplications,omitempty"`
	Pseudocode            string         `json:"pseudocode,omitempty" yaml:"pseudocode,omitempty"`
	KeyConcepts           string         `json:"keyConcepts,omitempty" yaml:"keyConcepts,omitempty"`
	ImplementationCode    string         `json:"implementationCode,omitempty" yaml:"implementationCode,omitempty"`
	QuizQuestions         []QuizQuestion `json:"quizQuestions,omitempty" yaml:"quizQuestions,omitempty"`
}

// Section is one optional, present piece of topic content.
type Section struct {
	Name string `json:"name" yaml:"name"`
	Body string `json:"body" yaml:"body"`
}

// Section names in display order.
const (
	SectionExtendedDefinition    = "extendedDefinition"
	SectionExample               = "example"
	SectionSyntax                = "syntax"
	SectionVoiceExplanation      = "voiceExplanation"
	SectionRealWorldApplications = "realWorldApplications"
	SectionPseudocode            = "pseudocode"
	SectionKeyConcepts           = "keyConcepts"
	SectionImplementationCode    = "implementationCode"
)

// Sections returns the present optional text sections in display order.
func (t *Topic) Sections() []Section {
	all := []Section{
		{SectionExtendedDefinition, t.ExtendedDefinition},
		{SectionExample, t.Example},
		{SectionSyntax, t.Syntax},
		{SectionVoiceExplanation, t.VoiceExplanation},
		{SectionRealWorldApplications, t.RealWorldApplications},
		{SectionPseudocode, t.Pseudocode},
		{SectionKeyConcepts, t.KeyConcepts},
		{SectionImplementationCode, t.ImplementationCode},
	}
	present := make([]Section, 0, len(all))
	for _, s := range all {
		if strings.TrimSpace(s.Body) != "" {
			present = append(present, s)
		}
	}
	return present
}

// HasQuiz reports whether the topic carries at least one question.
func (t *Topic) HasQuiz() bool {
	return len(t.QuizQuestions) > 0
}

// Clone returns a deep copy so callers cannot mutate shared content. An
// empty quiz list becomes nil, the form it takes after an export round trip.
func (t *Topic) Clone() *Topic {
	if t == nil {
		return nil
	}
	c := *t
	c.QuizQuestions = nil
	if len(t.QuizQuestions) > 0 {
		c.QuizQuestions = make([]QuizQuestion, len(t.QuizQuestions))
		for i, q := range t.QuizQuestions {
			q.Options = append([]string(nil), q.Options...)
			c.QuizQuestions[i] = q
		}
	}
	return &c
}

// Validate checks the record-local rules. Category membership and id
// uniqueness need the whole collection and are checked by the validation package.
func (t *Topic) Validate() ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(t.ID) == "" {
		errs = append(errs, NewMissingFieldError("id"))
	}
	for _, f := range []struct {
		name  string
		value string
		limit int
	}{
		{"title", t.Title, MaxTitleLength},
		{"description", t.Description, MaxDescriptionLength},
		{"category", t.Category, MaxCategoryLength},
	} {
		if ve := checkRequired(f.name, f.value, f.limit); ve != nil {
			errs = append(errs, *ve)
		}
	}
	if t.Difficulty == "" {
		errs = append(errs, NewMissingFieldError("difficulty"))
	} else if !t.Difficulty.Valid() {
		errs = append(errs, NewInvalidFormatError("difficulty", string(t.Difficulty)))
	}
	for i := range t.QuizQuestions {
		errs = append(errs, t.QuizQuestions[i].Validate().Prefix(fmt.Sprintf("quizQuestions[%d]", i))...)
	}
	return errs
}

// CategorySummary is a category with the number of topics and questions filed under it.
type CategorySummary struct {
	Name       string
	Position   int
	TopicCount int
	QuizCount  int
}
