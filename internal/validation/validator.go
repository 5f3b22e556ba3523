package validation

import (
	"fmt"
	"strings"

	"quiz-xmlgen/internal/domain"
	"quiz-xmlgen/internal/dto"
)

// Validator provides request validation functionality. Checks are presence
// checks only: the generation pipeline is defined to pass short answer lists
// and out-of-range correct-answer indexes straight through.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateBaseName validates the base_name form field
func (v *Validator) ValidateBaseName(baseName string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(baseName) == "" {
		errors = append(errors, domain.NewMissingFieldError("base_name"))
	}
	return errors
}

// ValidateDocument checks that every quiz and question in the uploaded
// document carries its required keys (id, TITLE, QUESTION, CORRECT).
func (v *Validator) ValidateDocument(doc *dto.QuizDocument) domain.ValidationErrors {
	var errors domain.ValidationErrors

	for i, quiz := range doc.Quizzes {
		prefix := fmt.Sprintf("quizzes[%d]", i)
		if quiz.ID == nil {
			errors = append(errors, domain.NewMissingFieldError(prefix+".id"))
		}
		if quiz.Title == nil {
			errors = append(errors, domain.NewMissingFieldError(prefix+".TITLE"))
		}
		for j, q := range quiz.Questions {
			qPrefix := fmt.Sprintf("%s.QUESTIONS[%d]", prefix, j)
			if q.Text == nil {
				errors = append(errors, domain.NewMissingFieldError(qPrefix+".QUESTION"))
			}
			if q.Correct == nil {
				errors = append(errors, domain.NewMissingFieldError(qPrefix+".CORRECT"))
			}
		}
	}

	return errors
}
