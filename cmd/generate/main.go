// Command generate runs the quiz XML generation pipeline against local
// files, producing the same archive the HTTP endpoint would return.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"quiz-xmlgen/internal/config"
	"quiz-xmlgen/internal/dto"
	"quiz-xmlgen/internal/logger"
	"quiz-xmlgen/internal/repository"
	"quiz-xmlgen/internal/service"

	"go.uber.org/zap"
)

func main() {
	inputPath := flag.String("input", "", "path to the quiz JSON document")
	baseName := flag.String("base", "", "base name for the generated files")
	outPath := flag.String("out", "", "output zip path (default <base>_xmls.zip)")
	flag.Parse()

	if *inputPath == "" || *baseName == "" {
		fmt.Fprintln(os.Stderr, "usage: generate -input quizzes.json -base math [-out math_xmls.zip]")
		os.Exit(2)
	}
	if *outPath == "" {
		*outPath = *baseName + "_xmls.zip"
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()

	input, err := os.Open(*inputPath)
	if err != nil {
		logger.Get().Fatal("Failed to open quiz JSON", zap.Error(err))
	}
	defer input.Close()

	var doc dto.QuizDocument
	dec := json.NewDecoder(input)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		logger.Get().Fatal("Invalid quiz JSON", zap.Error(err))
	}

	templateRepo := repository.NewFileTemplateRepository(cfg.Templates)
	generator := service.NewGeneratorService(templateRepo)

	data, err := generator.Generate(&doc, *baseName)
	if err != nil {
		logger.Get().Fatal("Generation failed", zap.Error(err))
	}

	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logger.Get().Fatal("Failed to write archive", zap.Error(err))
	}

	logger.Get().Info("Archive written",
		zap.String("path", *outPath),
		zap.Int("quiz_count", len(doc.Quizzes)),
		zap.Int("bytes", len(data)),
	)
}
