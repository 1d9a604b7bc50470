package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyContentEmptyText(t *testing.T) {
	profile := ClassifyContent("")
	assert.False(t, profile.HasAlarms)
	assert.False(t, profile.HasParameters)
}

func TestClassifyContentNeutralProse(t *testing.T) {
	profile := ClassifyContent("Thank you for purchasing this machine. Please read the safety instructions before operating.")
	assert.False(t, profile.HasAlarms)
	assert.False(t, profile.HasParameters)
}

func TestClassifyContentAlarmCodePattern(t *testing.T) {
	// A single coded header is enough, even without repeated keywords.
	profile := ClassifyContent("Alarm 0282 Drive overtemperature")
	assert.True(t, profile.HasAlarms)
}

func TestClassifyContentAlarmKeywordDensity(t *testing.T) {
	profile := ClassifyContent("In case of a malfunction, note the error shown on the display.")
	assert.True(t, profile.HasAlarms, "two distinct alarm keywords meet the threshold")
}

func TestClassifyContentParameterHint(t *testing.T) {
	profile := ClassifyContent("Technical data for the filler unit follows.")
	assert.True(t, profile.HasParameters)
}

func TestClassifyContentParameterKeywordDensity(t *testing.T) {
	profile := ClassifyContent("Clamping force and stroke are listed per size.")
	assert.True(t, profile.HasParameters, "two distinct parameter keywords meet the threshold")
}

func TestClassifyContentMixedDocument(t *testing.T) {
	text := "Chapter 7: fault list\nError: 17 Conveyor jam\n\nChapter 8: technical data\nStroke 120 mm"
	profile := ClassifyContent(text)
	assert.True(t, profile.HasAlarms)
	assert.True(t, profile.HasParameters)
}
