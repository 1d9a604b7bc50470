package entity

import "time"

// AlarmRecord is one fault/alarm definition extracted from a manual.
// The natural key within a source document is (SourceHash, AlarmID).
type AlarmRecord struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// AlarmID is always a string so leading zeros survive ("0282", never 282).
	AlarmID     string `gorm:"uniqueIndex:uniq_source_alarm;size:16" json:"alarm_id"`
	Description string `gorm:"type:text" json:"description"`
	Cause       string `gorm:"type:text" json:"cause,omitempty"`
	Action      string `gorm:"type:text" json:"action,omitempty"`

	// Filled by classification; levels 3/4 mirror cause/action when empty.
	ReasonLevel1 string `json:"reason_level_1,omitempty"`
	ReasonLevel2 string `json:"reason_level_2,omitempty"`
	ReasonLevel3 string `json:"reason_level_3,omitempty"`
	ReasonLevel4 string `json:"reason_level_4,omitempty"`
	CategoryType string `json:"category_type"`

	// Provenance, set by the pipeline orchestrator.
	Machine     string    `gorm:"index" json:"machine,omitempty"`
	SourceHash  string    `gorm:"uniqueIndex:uniq_source_alarm;index;size:32" json:"source_hash,omitempty"`
	SourceFile  string    `json:"source_file,omitempty"`
	ExtractedAt time.Time `json:"extracted_at,omitempty"`

	// ManuallyEdited is set only by the human-edit path, never here.
	ManuallyEdited bool `json:"manually_edited"`
}
