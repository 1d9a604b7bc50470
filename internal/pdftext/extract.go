// Package pdftext extracts plain text from PDF manuals. A primary
// text-layer parser is tried first; a second, independent content-stream
// parser takes over when the primary fails or yields nothing. Extraction is
// best-effort and never returns an error: an unreadable document degrades to
// empty text, which downstream stages treat as "no classifiable content".
package pdftext

import (
	"log/slog"
	"strings"
)

// Extractor acquires text from raw PDF bytes.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractText returns the best-effort plain text for the document.
func (e *Extractor) ExtractText(fileBytes []byte) string {
	text, err := extractTextLayer(fileBytes)
	if err != nil {
		e.logger.Warn("pdftext.primary.failed", "error", err)
		text = ""
	}
	if strings.TrimSpace(text) != "" {
		e.logger.Info("pdftext.primary.ok", "bytes", len(text))
		return text
	}

	text, err = extractContentStreams(fileBytes)
	if err != nil {
		e.logger.Warn("pdftext.fallback.failed", "error", err)
		return ""
	}
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("pdftext.empty", "input_bytes", len(fileBytes))
		return ""
	}
	e.logger.Info("pdftext.fallback.ok", "bytes", len(text))
	return text
}
