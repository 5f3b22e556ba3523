// Package render fills the quiz XML template and the metadata block for one
// quiz via literal placeholder substitution.
//
// Placeholder grammar: {{TITLE}}, {{QUESTION_<n>}}, {{ANSWER_<n><A-D>}} and
// {{Option_<n><1-4>}} in the quiz template, {{ID}} in the metadata block.
// <n> is the 1-based question number concatenated directly against the
// letter/digit suffix. Replacements are literal, global, case-sensitive and
// non-recursive. The concatenated grammar is ambiguous for n >= 10
// (Option_111 reads as question 1/option 11 as much as question 11/option 1);
// existing template files depend on the exact replacement order below, so it
// is kept as-is.
package render

import (
	"fmt"
	"strings"

	"quiz-xmlgen/internal/domain"
)

// Fill produces the output document for one quiz: the quiz template with
// every known placeholder substituted, followed by the metadata block with
// its {{ID}} resolved. Placeholders for answers the quiz does not supply
// stay literally in the output.
func Fill(quizTemplate, metaTemplate string, quiz *domain.Quiz) string {
	content := strings.ReplaceAll(quizTemplate, "{{TITLE}}", quiz.Title)

	for i, q := range quiz.Questions {
		qnum := i + 1
		content = strings.ReplaceAll(content, fmt.Sprintf("{{QUESTION_%d}}", qnum), q.Text)

		// Answer slots are lettered A-D in submission order.
		for anum, answer := range q.Answers {
			placeholder := fmt.Sprintf("{{ANSWER_%d%c}}", qnum, 'A'+rune(anum))
			content = strings.ReplaceAll(content, placeholder, answer)
		}

		content = markCorrect(content, qnum, q.Correct)
	}

	meta := strings.ReplaceAll(metaTemplate, "{{ID}}", quiz.ID)
	return content + meta
}

// markCorrect resolves all four {{Option_<qnum><i>}} placeholders of one
// question to "true"/"false". correct is the zero-based answer index; every
// slot resolves even when the question carries fewer than four answers, so
// an out-of-range index yields four "false" values.
func markCorrect(content string, qnum, correct int) string {
	for i := 1; i <= 4; i++ {
		value := "false"
		if i-1 == correct {
			value = "true"
		}
		placeholder := fmt.Sprintf("{{Option_%d%d}}", qnum, i)
		content = strings.ReplaceAll(content, placeholder, value)
	}
	return content
}
