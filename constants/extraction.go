package constants

import "strings"

// DefaultChunkSize is the character budget for one alarm-extraction chunk.
// Chunks never split inside a paragraph.
const DefaultChunkSize = 4000

// ConfidenceThreshold is the classification confidence below which a record
// is flagged for human review.
const ConfidenceThreshold = 0.7

// DefaultExtractionVersion tags processed-file records; bumping it
// invalidates every cached extraction without touching stored records.
const DefaultExtractionVersion = "v4-parameter-noise-filter"

// ParameterNoisePatterns are line prefixes that belong to alarm blocks and
// must never be parsed as parameter specifications.
var ParameterNoisePatterns = []string{
	`(?i)cause:`,
	`(?i)reaction:`,
	`(?i)remedy:`,
}

// AllowedExtensions holds the file extensions accepted for manual uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
