package pdftext

import (
	"regexp"
	"strings"
)

// ContentProfile reports which record types a document appears to contain.
// It gates the expensive extractors; thresholds are deliberately low since a
// false positive only costs extra extraction work while a false negative
// silently drops real records.
type ContentProfile struct {
	HasAlarms     bool
	HasParameters bool
}

var (
	// Trailing spaces keep "error" from matching inside "errors" etc. in
	// running prose while still hitting table headers.
	alarmKeywords = []string{"alarm ", "error ", "fault ", "malfunction"}
	paramKeywords = []string{
		"parameter", "specification", "limit", "tolerance", "technical data",
		"dimension", "capacity", "force", "weight", "stroke",
	}

	alarmCodeRe = regexp.MustCompile(`(alarm|error|fault)\s*[:\-]?\s*\d+`)
	paramHintRe = regexp.MustCompile(`parameter|technical data|specification`)
)

// ClassifyContent scans the extracted text once and decides which extractors
// are worth running.
func ClassifyContent(text string) ContentProfile {
	lower := strings.ToLower(text)
	if lower == "" {
		return ContentProfile{}
	}

	alarmCount := 0
	for _, kw := range alarmKeywords {
		if strings.Contains(lower, kw) {
			alarmCount++
		}
	}
	paramCount := 0
	for _, kw := range paramKeywords {
		if strings.Contains(lower, kw) {
			paramCount++
		}
	}

	return ContentProfile{
		HasAlarms:     alarmCount >= 2 || alarmCodeRe.MatchString(lower),
		HasParameters: paramCount >= 2 || paramHintRe.MatchString(lower),
	}
}
