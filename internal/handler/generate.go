package handler

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"quiz-xmlgen/internal/domain"
	"quiz-xmlgen/internal/dto"
	"quiz-xmlgen/internal/logger"
	"quiz-xmlgen/internal/middleware"
	"quiz-xmlgen/internal/service"
	"quiz-xmlgen/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerateHandler handles quiz XML generation HTTP requests
type GenerateHandler struct {
	service   service.GeneratorService
	validator *validation.Validator
	staticDir string
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(svc service.GeneratorService, staticDir string) *GenerateHandler {
	return &GenerateHandler{
		service:   svc,
		validator: validation.NewValidator(),
		staticDir: staticDir,
	}
}

// UploadPage godoc
// @Summary Upload page
// @Description Serves the quiz JSON upload form
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML upload page"
// @Router / [get]
func (h *GenerateHandler) UploadPage(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.staticDir, "upload.html"))
}

// Favicon serves the site icon
func (h *GenerateHandler) Favicon(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.staticDir, "favicon.ico"))
}

// Health godoc
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *GenerateHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}

// GenerateXMLs godoc
// @Summary Generate quiz XML archive
// @Description Fills the XML template for every quiz in the uploaded JSON document and returns the files as a zip archive
// @Tags generate
// @Accept multipart/form-data
// @Produce application/zip
// @Param quiz_json formData file true "Quiz JSON document"
// @Param base_name formData string true "Base name for the generated files"
// @Success 200 {file} binary "Zip archive of generated XML files"
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate_xmls [post]
func (h *GenerateHandler) GenerateXMLs(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("quiz_json")
	if err != nil {
		return domain.NewInvalidInputError("No JSON file part")
	}

	baseName := strings.TrimSpace(c.FormValue("base_name"))
	if errs := h.validator.ValidateBaseName(baseName); len(errs) > 0 {
		return errs
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer file.Close()

	var doc dto.QuizDocument
	dec := json.NewDecoder(file)
	// Keep numeric ids in their literal form for {{ID}} substitution.
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return domain.NewInvalidJSONError(err)
	}

	data, err := h.service.Generate(&doc, baseName)
	if err != nil {
		return err
	}

	logger.Get().Info("Serving quiz archive",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("base_name", baseName),
		zap.Int("quiz_count", len(doc.Quizzes)),
	)

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s_xmls.zip"`, baseName))
	return c.Send(data)
}
