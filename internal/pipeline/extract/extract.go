package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adikol/docvoice/pkg/logger_i"
	"github.com/lu4p/cat"
)

// FileExtractor recovers embedded text from a local document file.
// PDF pages are walked in document order; a page yielding no text still
// contributes its blank-line separator so page positions stay visible.
type FileExtractor struct {
	logger *logger_i.Logger
}

func NewFileExtractor() *FileExtractor {
	return &FileExtractor{
		logger: logger_i.NewLogger("Extractor"),
	}
}

func (e *FileExtractor) Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.extractPDF(path)
	case ".txt", ".docx", ".rtf", ".odt":
		return e.extractPlain(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// extractPlain reads a .odt, .docx, .rtf or plaintext file in one piece.
func (e *FileExtractor) extractPlain(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		e.logger.Error("Error extracting content from doc", "error", err)
		return "", fmt.Errorf("failed to extract document: %w", err)
	}
	return text + "\n\n", nil
}
