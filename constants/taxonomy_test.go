package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategoryType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Planned Downtime", PlannedDowntime},
		{"planned downtime", PlannedDowntime},
		{"  PLANNED  ", PlannedDowntime},
		{"Unplanned Downtime", UnplannedDowntime},
		// "unplanned" contains "planned"; the unplanned check must win.
		{"unplanned", UnplannedDowntime},
		{"something else", UnplannedDowntime},
		{"", UnplannedDowntime},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalCategoryType(tt.input), "input %q", tt.input)
	}
}

func TestTaxonomyListsAreClosed(t *testing.T) {
	assert.Len(t, ReasonLevel1Categories(), 3)
	assert.Contains(t, ReasonLevel1Categories(), "Basic Machine and Safety Faults")
	assert.Len(t, ReasonLevel2Domains(), 5)
	assert.Contains(t, ReasonLevel2Domains(), "Sensor/Instrumentation")
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "pdf", NormalizeExt("pdf"))
	_, ok := AllowedExtensions[NormalizeExt(".pdf")]
	assert.True(t, ok)
}
