package validation

import (
	"regexp"
	"strings"

	"dsa-catalog/internal/domain"
)

// MaxTopicIDLength bounds topic ids accepted from requests and content.
const MaxTopicIDLength = 100

var topicIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopicID validates a topic id taken from a path parameter.
func (v *Validator) ValidateTopicID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
		return errors
	}
	if len(id) > MaxTopicIDLength {
		errors = append(errors, domain.NewOutOfRangeError("id", len(id), 1, MaxTopicIDLength))
		return errors
	}
	if !IsValidTopicID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// IsValidTopicID reports whether id is a lowercase kebab-case slug.
func IsValidTopicID(id string) bool {
	return len(id) <= MaxTopicIDLength && topicIDPattern.MatchString(id)
}
