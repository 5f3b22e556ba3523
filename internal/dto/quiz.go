package dto

import (
	"fmt"
	"quiz-xmlgen/internal/domain"
)

// QuizDocument is the shape of the uploaded quiz_json file.
// @Description Uploaded quiz document
type QuizDocument struct {
	Quizzes []QuizUpload `json:"quizzes"`
}

// QuizUpload represents one quiz in the uploaded document. Required keys are
// pointer/any typed so the validator can tell an absent key from a zero
// value; the upload format has always used upper-case keys.
type QuizUpload struct {
	ID        any              `json:"id"`
	Title     *string          `json:"TITLE"`
	Questions []QuestionUpload `json:"QUESTIONS"`
}

// QuestionUpload represents one question within a quiz upload
type QuestionUpload struct {
	Text    *string  `json:"QUESTION"`
	Answers []string `json:"ANSWERS"`
	Correct *int     `json:"CORRECT"`
}

// ToDomain converts a validated upload into the domain model. It must only
// be called after validation has confirmed the required keys are present.
func (q *QuizUpload) ToDomain() *domain.Quiz {
	questions := make([]domain.Question, len(q.Questions))
	for i, uq := range q.Questions {
		questions[i] = domain.Question{
			Text:    *uq.Text,
			Answers: uq.Answers,
			Correct: *uq.Correct,
		}
	}
	return &domain.Quiz{
		// Decoded with UseNumber, so numeric ids keep their literal form.
		ID:        fmt.Sprintf("%v", q.ID),
		Title:     *q.Title,
		Questions: questions,
	}
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}
