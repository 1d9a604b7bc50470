package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// ProcessedFile is the cache-gate record for one ingested document, keyed by
// content hash. ExtractionVersion is the invalidation key: a stored record
// with a stale version is treated as a cache miss.
type ProcessedFile struct {
	Hash              string          `gorm:"primaryKey;size:32" json:"hash"`
	Filename          string          `json:"filename"`
	Machine           string          `gorm:"index" json:"machine"`
	ProcessedAt       time.Time       `gorm:"index" json:"processed_at"`
	TabsExtracted     string          `json:"tabs_extracted"` // comma-separated record types
	RecordCounts      json.RawMessage `gorm:"type:text" json:"record_counts"`
	ExtractionVersion string          `json:"extraction_version"`
}

// Tabs splits TabsExtracted back into its record-type list.
func (p ProcessedFile) Tabs() []string {
	if p.TabsExtracted == "" {
		return nil
	}
	return strings.Split(p.TabsExtracted, ",")
}

// ExportLog records one tabular export for audit purposes.
type ExportLog struct {
	ID           uint            `gorm:"primaryKey" json:"-"`
	Machine      string          `gorm:"index" json:"machine"`
	Filename     string          `json:"filename"`
	TabsExported string          `json:"tabs_exported"`
	RecordCounts json.RawMessage `gorm:"type:text" json:"record_counts"`
	ExportedAt   time.Time       `gorm:"index" json:"exported_at"`
}
