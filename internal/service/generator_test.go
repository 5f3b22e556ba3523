package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"quiz-xmlgen/internal/domain"
	"quiz-xmlgen/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTemplateRepository
type MockTemplateRepository struct {
	LoadFunc func() (domain.TemplateSet, error)
}

func (m *MockTemplateRepository) Load() (domain.TemplateSet, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	panic("MockTemplateRepository.LoadFunc not implemented")
}

func fixedTemplates() *MockTemplateRepository {
	return &MockTemplateRepository{
		LoadFunc: func() (domain.TemplateSet, error) {
			return domain.TemplateSet{
				Quiz: "<quiz title=\"{{TITLE}}\"><q>{{QUESTION_1}}</q>" +
					"<a c=\"{{Option_11}}\">{{ANSWER_1A}}</a>" +
					"<a c=\"{{Option_12}}\">{{ANSWER_1B}}</a>" +
					"<a c=\"{{Option_13}}\">{{ANSWER_1C}}</a>" +
					"<a c=\"{{Option_14}}\">{{ANSWER_1D}}</a></quiz>",
				Meta: "<meta id=\"{{ID}}\"/>",
			}, nil
		},
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func mathDocument() *dto.QuizDocument {
	return &dto.QuizDocument{Quizzes: []dto.QuizUpload{{
		ID:    float64(1),
		Title: strPtr("Quiz A"),
		Questions: []dto.QuestionUpload{{
			Text:    strPtr("2+2?"),
			Answers: []string{"3", "4", "5", "6"},
			Correct: intPtr(1),
		}},
	}}}
}

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = string(content)
	}
	return files
}

func TestGenerate_MathScenario(t *testing.T) {
	svc := NewGeneratorService(fixedTemplates())

	data, err := svc.Generate(mathDocument(), "math")
	require.NoError(t, err)

	files := readArchive(t, data)
	require.Len(t, files, 1)
	content, ok := files["math_1.xml"]
	require.True(t, ok)

	assert.Contains(t, content, `title="Quiz A"`)
	assert.Contains(t, content, "<q>2+2?</q>")
	assert.Contains(t, content, `<a c="false">3</a>`)
	assert.Contains(t, content, `<a c="true">4</a>`)
	assert.Contains(t, content, `<a c="false">5</a>`)
	assert.Contains(t, content, `<a c="false">6</a>`)
	assert.True(t, strings.HasSuffix(content, `<meta id="1"/>`))
}

func TestGenerate_EntryPerQuizInSubmissionOrder(t *testing.T) {
	doc := &dto.QuizDocument{}
	for _, title := range []string{"first", "second", "third"} {
		doc.Quizzes = append(doc.Quizzes, dto.QuizUpload{
			ID:    title,
			Title: strPtr(title),
		})
	}

	svc := NewGeneratorService(fixedTemplates())
	data, err := svc.Generate(doc, "exam")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 3)
	assert.Equal(t, "exam_1.xml", zr.File[0].Name)
	assert.Equal(t, "exam_2.xml", zr.File[1].Name)
	assert.Equal(t, "exam_3.xml", zr.File[2].Name)
}

func TestGenerate_EmptyDocumentYieldsEmptyArchive(t *testing.T) {
	svc := NewGeneratorService(fixedTemplates())

	data, err := svc.Generate(&dto.QuizDocument{}, "none")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}

func TestGenerate_FileContentIsReproducible(t *testing.T) {
	svc := NewGeneratorService(fixedTemplates())

	first, err := svc.Generate(mathDocument(), "math")
	require.NoError(t, err)
	second, err := svc.Generate(mathDocument(), "math")
	require.NoError(t, err)

	assert.Equal(t, readArchive(t, first), readArchive(t, second))
}

func TestGenerate_MissingRequiredKeysAbort(t *testing.T) {
	svc := NewGeneratorService(fixedTemplates())

	doc := &dto.QuizDocument{Quizzes: []dto.QuizUpload{{
		ID: "1",
		// TITLE key absent
	}}}

	data, err := svc.Generate(doc, "bad")
	assert.Nil(t, data)

	var errs domain.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "quizzes[0].TITLE", errs[0].Field)
}

func TestGenerate_TemplateLoadFailure(t *testing.T) {
	svc := NewGeneratorService(&MockTemplateRepository{
		LoadFunc: func() (domain.TemplateSet, error) {
			return domain.TemplateSet{}, errors.New("open templates/xml_template.xml: no such file or directory")
		},
	})

	data, err := svc.Generate(mathDocument(), "math")
	assert.Nil(t, data)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrTemplateNotFound, domainErr.Code)
	assert.Contains(t, domainErr.Message, "Template files not found")
}

func TestGenerate_StringIDPassesThrough(t *testing.T) {
	doc := &dto.QuizDocument{Quizzes: []dto.QuizUpload{{
		ID:    "abc-42",
		Title: strPtr("T"),
	}}}

	svc := NewGeneratorService(fixedTemplates())
	data, err := svc.Generate(doc, "x")
	require.NoError(t, err)

	files := readArchive(t, data)
	assert.Contains(t, files["x_1.xml"], `<meta id="abc-42"/>`)
}
