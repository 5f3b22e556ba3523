package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDocument(t *testing.T, payload string) QuizDocument {
	t.Helper()
	var doc QuizDocument
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&doc))
	return doc
}

func TestQuizUpload_ToDomain(t *testing.T) {
	doc := decodeDocument(t, `{"quizzes":[{"id":1,"TITLE":"Quiz A","QUESTIONS":[
		{"QUESTION":"2+2?","ANSWERS":["3","4","5","6"],"CORRECT":1},
		{"QUESTION":"Capital of France?","ANSWERS":["Paris","Rome"],"CORRECT":0}
	]}]}`)

	quiz := doc.Quizzes[0].ToDomain()

	assert.Equal(t, "1", quiz.ID)
	assert.Equal(t, "Quiz A", quiz.Title)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, "2+2?", quiz.Questions[0].Text)
	assert.Equal(t, []string{"3", "4", "5", "6"}, quiz.Questions[0].Answers)
	assert.Equal(t, 1, quiz.Questions[0].Correct)
	assert.Equal(t, []string{"Paris", "Rome"}, quiz.Questions[1].Answers)
	assert.Equal(t, 0, quiz.Questions[1].Correct)
}

func TestQuizUpload_ToDomain_IDForms(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"integer id", `{"quizzes":[{"id":42,"TITLE":"t"}]}`, "42"},
		{"string id", `{"quizzes":[{"id":"quiz-7","TITLE":"t"}]}`, "quiz-7"},
		{"decimal id keeps its literal form", `{"quizzes":[{"id":3.5,"TITLE":"t"}]}`, "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := decodeDocument(t, tt.payload)
			assert.Equal(t, tt.want, doc.Quizzes[0].ToDomain().ID)
		})
	}
}

func TestQuizUpload_AbsentKeysDecodeAsNil(t *testing.T) {
	doc := decodeDocument(t, `{"quizzes":[{"QUESTIONS":[{"ANSWERS":["a"]}]}]}`)

	quiz := doc.Quizzes[0]
	assert.Nil(t, quiz.ID)
	assert.Nil(t, quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Nil(t, quiz.Questions[0].Text)
	assert.Nil(t, quiz.Questions[0].Correct)
}
