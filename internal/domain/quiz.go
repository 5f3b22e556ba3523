package domain

import (
	"fmt"
	"strings"
)

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates all validation failures of one request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// NewMissingFieldError reports a required key that is absent from the upload
func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "required field is missing"}
}

// Quiz is one quiz as parsed from the uploaded document. Values are read
// once and never mutated; rendering works on its own copies.
type Quiz struct {
	ID        string
	Title     string
	Questions []Question
}

// Question carries the question text, its answers in submission order and
// the zero-based index of the correct answer. ANSWERS may hold fewer than
// four entries; placeholders for absent slots stay untouched in the output.
type Question struct {
	Text    string
	Answers []string
	Correct int
}

// TemplateSet holds the two template strings one generation run works with.
type TemplateSet struct {
	Quiz string
	Meta string
}

// TemplateRepository loads the template pair. Implementations re-read their
// backing store on every call; callers must not cache the result across
// requests.
type TemplateRepository interface {
	Load() (TemplateSet, error)
}
