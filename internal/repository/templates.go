package repository

import (
	"fmt"
	"os"

	"quiz-xmlgen/internal/config"
	"quiz-xmlgen/internal/domain"
)

// fileTemplateRepository loads the template pair from the file system. Both
// files are read on every Load so edits on disk apply to the next request
// without a restart; the paths themselves come from the startup config.
type fileTemplateRepository struct {
	cfg config.TemplatesConfig
}

// NewFileTemplateRepository creates a template repository backed by the two
// configured template files.
func NewFileTemplateRepository(cfg config.TemplatesConfig) domain.TemplateRepository {
	return &fileTemplateRepository{cfg: cfg}
}

// Load implements domain.TemplateRepository
func (r *fileTemplateRepository) Load() (domain.TemplateSet, error) {
	quiz, err := os.ReadFile(r.cfg.QuizPath)
	if err != nil {
		return domain.TemplateSet{}, fmt.Errorf("read quiz template %s: %w", r.cfg.QuizPath, err)
	}
	meta, err := os.ReadFile(r.cfg.MetaPath)
	if err != nil {
		return domain.TemplateSet{}, fmt.Errorf("read meta block %s: %w", r.cfg.MetaPath, err)
	}
	return domain.TemplateSet{Quiz: string(quiz), Meta: string(meta)}, nil
}
