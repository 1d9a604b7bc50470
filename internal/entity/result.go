package entity

// ExtractionResult is the pipeline's output envelope for one document.
type ExtractionResult struct {
	Success    bool              `json:"success"`
	Alarms     []AlarmRecord     `json:"alarms"`
	Parameters []ParameterRecord `json:"parameters"`
	Errors     []string          `json:"errors"`
	Warnings   []string          `json:"warnings"`

	// Trace holds the ordered human-readable step log shown to operators.
	Trace []string `json:"trace"`
	// Timings maps stage name to elapsed seconds.
	Timings map[string]float64 `json:"timings"`

	SourceFilename string `json:"source_filename,omitempty"`
	SourceHash     string `json:"source_hash,omitempty"`
	// SourceText is the full extracted text; empty on a cache hit so large
	// documents are not re-shipped unnecessarily.
	SourceText string `json:"source_text"`
}
