package entity

import "time"

// ParameterRecord is one process parameter/specification line.
// The natural key within a source document is (SourceHash, Description).
type ParameterRecord struct {
	ID uint `gorm:"primaryKey" json:"-"`

	ParameterCode string `json:"parameter_code,omitempty"`
	Description   string `gorm:"uniqueIndex:uniq_source_param;size:512" json:"description"`
	Section       string `json:"section,omitempty"`
	ProductDesc   string `json:"product_desc,omitempty"`

	// Tolerance band. A tolerance match fills Target/LSL/USL around the
	// value; a range match puts the midpoint in Target; a single value
	// fills Target only. The reject/warn limits are for manual curation.
	Target *float64 `json:"target,omitempty"`
	Unit   string   `json:"unit,omitempty"`
	LRL    *float64 `json:"lrl,omitempty"`
	LSL    *float64 `json:"lsl,omitempty"`
	LWL    *float64 `json:"lwl,omitempty"`
	UWL    *float64 `json:"uwl,omitempty"`
	USL    *float64 `json:"usl,omitempty"`
	URL    *float64 `json:"url,omitempty"`

	Machine     string    `gorm:"index" json:"machine,omitempty"`
	SourceHash  string    `gorm:"uniqueIndex:uniq_source_param;index;size:32" json:"source_hash,omitempty"`
	SourceFile  string    `json:"source_file,omitempty"`
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
}
