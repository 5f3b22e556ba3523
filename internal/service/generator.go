package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"quiz-xmlgen/internal/domain"
	"quiz-xmlgen/internal/dto"
	"quiz-xmlgen/internal/logger"
	"quiz-xmlgen/internal/render"
	"quiz-xmlgen/internal/validation"

	"go.uber.org/zap"
)

// GeneratorService defines the interface for quiz XML generation
type GeneratorService interface {
	// Generate fills the templates for every quiz in the document and
	// returns the finished zip archive. Entries are named
	// <baseName>_<i>.xml with i counting from 1 in submission order.
	Generate(doc *dto.QuizDocument, baseName string) ([]byte, error)
}

// generatorService implements GeneratorService
type generatorService struct {
	templates domain.TemplateRepository
	validator *validation.Validator
}

// NewGeneratorService creates a new instance of generatorService
func NewGeneratorService(templates domain.TemplateRepository) GeneratorService {
	return &generatorService{
		templates: templates,
		validator: validation.NewValidator(),
	}
}

// Generate implements GeneratorService. Any failure aborts the whole run;
// no partial archive is ever returned.
func (s *generatorService) Generate(doc *dto.QuizDocument, baseName string) ([]byte, error) {
	if errs := s.validator.ValidateDocument(doc); len(errs) > 0 {
		return nil, errs
	}

	// Templates are re-read from disk on every generation run.
	ts, err := s.templates.Load()
	if err != nil {
		return nil, domain.NewTemplateNotFoundError(err)
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	for i, upload := range doc.Quizzes {
		quiz := upload.ToDomain()
		filled := render.Fill(ts.Quiz, ts.Meta, quiz)

		name := fmt.Sprintf("%s_%d.xml", baseName, i+1)
		w, err := zw.Create(name)
		if err != nil {
			return nil, domain.NewInternalError("Failed to create archive entry", err)
		}
		if _, err := io.WriteString(w, filled); err != nil {
			return nil, domain.NewInternalError("Failed to write archive entry", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, domain.NewInternalError("Failed to finalize archive", err)
	}

	logger.Get().Info("Generated quiz archive",
		zap.String("base_name", baseName),
		zap.Int("quiz_count", len(doc.Quizzes)),
		zap.Int("archive_bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}
