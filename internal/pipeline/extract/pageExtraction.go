package extract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adikol/docvoice/internal/config"
	"github.com/dslipak/pdf"
)

func (e *FileExtractor) extractPDF(path string) (string, error) {
	e.logger.Debug("extractPDF", "attempting extraction", path)
	f, err := pdf.Open(path)
	if err != nil {
		e.logger.Error("failed opening of pdf file", "error", err)
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var b strings.Builder
	numPages := f.NumPage()
	e.logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)

		content := ""
		if !page.V.IsNull() {
			content, err = protectExtract(page)
			if err != nil {
				// a bad page degrades to empty text, the rest still extract
				e.logger.Warn("Error parsing page content", "page", i, "error", err)
				content = ""
			}
		}

		b.WriteString(content)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// protectExtract guards GetPlainText with a timeout; some malformed PDFs
// make the parser spin.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractLimit):
		return "", errors.New("timeout")
	}
}
