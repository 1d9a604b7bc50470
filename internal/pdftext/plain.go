package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractTextLayer reads the PDF text layer page by page. Pages without a
// text layer contribute nothing; a scanned-only document yields "".
func extractTextLayer(fileBytes []byte) (text string, err error) {
	// The reader panics on some malformed cross-reference tables; a broken
	// document must fall through to the secondary parser, not crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text-layer parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= reader.NumPage(); pageNr++ {
		page := reader.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(content) == "" {
			continue
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}
