package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeStore        ErrorCode = "STORE_ERROR"

	// Catalog specific errors
	CodeTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"

	// Validation errors
	CodeValidation       ErrorCode = "VALIDATION_ERROR"
	CodeMissingField     ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat    ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange       ErrorCode = "OUT_OF_RANGE"
	CodeDuplicate        ErrorCode = "DUPLICATE_VALUE"
	CodeUnknownReference ErrorCode = "UNKNOWN_REFERENCE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a detail that is rendered in API error responses.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewStoreError(message string, cause error) *DomainError {
	return NewError(CodeStore, message, cause)
}

func NewTopicNotFoundError(topicID string) *DomainError {
	return NewError(CodeTopicNotFound, fmt.Sprintf("Topic not found with ID: %s", topicID), nil).
		WithContext("topic_id", topicID)
}

// ValidationError describes one invalid field. Field is a path such as
// "topics[3].quizQuestions[1].correctAnswer".
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Prefix returns a copy with every field path prefixed, e.g. "topics[2]".
func (e ValidationErrors) Prefix(prefix string) ValidationErrors {
	if len(e) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(e))
	for i, ve := range e {
		ve.Field = prefix + "." + ve.Field
		out[i] = ve
	}
	return out
}

// Err returns nil for an empty slice so callers can return it directly as error.
func (e ValidationErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}

func NewDuplicateError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeDuplicate,
		Message: fmt.Sprintf("%s must be unique", field),
		Value:   value,
	}
}

func NewUnknownReferenceError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeUnknownReference,
		Message: fmt.Sprintf("%s refers to an unknown value", field),
		Value:   value,
	}
}
