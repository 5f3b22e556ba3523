package repository

import (
	"os"
	"path/filepath"
	"testing"

	"quiz-xmlgen/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplates(t *testing.T, quiz, meta string) config.TemplatesConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := config.TemplatesConfig{
		QuizPath: filepath.Join(dir, "xml_template.xml"),
		MetaPath: filepath.Join(dir, "meta_block.xml"),
	}
	require.NoError(t, os.WriteFile(cfg.QuizPath, []byte(quiz), 0o644))
	require.NoError(t, os.WriteFile(cfg.MetaPath, []byte(meta), 0o644))
	return cfg
}

func TestFileTemplateRepository_Load(t *testing.T) {
	cfg := writeTemplates(t, "<quiz>{{TITLE}}</quiz>", "<meta>{{ID}}</meta>")
	repo := NewFileTemplateRepository(cfg)

	ts, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "<quiz>{{TITLE}}</quiz>", ts.Quiz)
	assert.Equal(t, "<meta>{{ID}}</meta>", ts.Meta)
}

func TestFileTemplateRepository_ReReadsEachCall(t *testing.T) {
	cfg := writeTemplates(t, "v1", "meta")
	repo := NewFileTemplateRepository(cfg)

	ts, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "v1", ts.Quiz)

	require.NoError(t, os.WriteFile(cfg.QuizPath, []byte("v2"), 0o644))

	ts, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "v2", ts.Quiz)
}

func TestFileTemplateRepository_MissingFiles(t *testing.T) {
	cfg := config.TemplatesConfig{
		QuizPath: filepath.Join(t.TempDir(), "nope.xml"),
		MetaPath: filepath.Join(t.TempDir(), "nope.xml"),
	}
	_, err := NewFileTemplateRepository(cfg).Load()
	assert.Error(t, err)

	// Quiz template present but meta block missing still fails.
	okCfg := writeTemplates(t, "quiz", "meta")
	okCfg.MetaPath = filepath.Join(t.TempDir(), "gone.xml")
	_, err = NewFileTemplateRepository(okCfg).Load()
	assert.Error(t, err)
}
