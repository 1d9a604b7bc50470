package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o3sigma/manual-extractor/internal/entity"
	"github.com/o3sigma/manual-extractor/internal/reason"
)

// stubClassifier records calls and returns a fixed classification.
type stubClassifier struct {
	calls  int
	result entity.Classification
}

func (s *stubClassifier) Classify(_ context.Context, _, _ string) entity.Classification {
	s.calls++
	return s.result
}

func fixedClassification() entity.Classification {
	return entity.Classification{
		ReasonLevel1: "Basic Machine and Safety Faults",
		ReasonLevel2: "Mechanical",
		CategoryType: "Unplanned Downtime",
		Confidence:   0.75,
	}
}

func TestExtractAlarmBlock(t *testing.T) {
	text := "Alarm 0282\n" +
		"Drive fault - inverter overtemperature\n" +
		"Cause: Cooling fan blocked\n" +
		"Remedy: Clean fan and restart drive\n"

	cls := &stubClassifier{result: fixedClassification()}
	e := NewAlarmExtractor(cls, 4000, nil)
	alarms := e.Extract(context.Background(), text)

	require.Len(t, alarms, 1)
	rec := alarms[0]
	assert.Equal(t, "0282", rec.AlarmID, "leading zeros must survive")
	assert.Equal(t, "Drive fault - inverter overtemperature", rec.Description)
	assert.Equal(t, "Cooling fan blocked", rec.Cause)
	assert.Equal(t, "Clean fan and restart drive", rec.Action)
	assert.Equal(t, "Mechanical", rec.ReasonLevel2)
	assert.Equal(t, "Unplanned Downtime", rec.CategoryType)
	assert.Equal(t, 1, cls.calls)
}

func TestExtractAlarmHeaderVariants(t *testing.T) {
	text := "Error: 17\nConveyor belt jam\n\nFault - 903\nPhotocell dirty\n"

	e := NewAlarmExtractor(&stubClassifier{result: fixedClassification()}, 4000, nil)
	alarms := e.Extract(context.Background(), text)

	require.Len(t, alarms, 2)
	assert.Equal(t, "17", alarms[0].AlarmID)
	assert.Equal(t, "Conveyor belt jam", alarms[0].Description)
	assert.Equal(t, "903", alarms[1].AlarmID)
	assert.Equal(t, "Photocell dirty", alarms[1].Description)
}

func TestExtractAlarmsFirstOccurrenceWins(t *testing.T) {
	// The same alarm table often repeats across pages; the first block wins.
	text := "Alarm 100\nFirst description\n\nAlarm 100\nSecond description\n"

	e := NewAlarmExtractor(&stubClassifier{result: fixedClassification()}, 4000, nil)
	alarms := e.Extract(context.Background(), text)

	require.Len(t, alarms, 1)
	assert.Equal(t, "First description", alarms[0].Description)
}

func TestExtractAlarmsEmptyDescriptionDiscarded(t *testing.T) {
	text := "Alarm 55\n\n\nAlarm 56\nReal fault text\n"

	e := NewAlarmExtractor(&stubClassifier{result: fixedClassification()}, 4000, nil)
	alarms := e.Extract(context.Background(), text)

	require.Len(t, alarms, 1)
	assert.Equal(t, "56", alarms[0].AlarmID)
}

func TestExtractAlarmsDescriptionTruncatedToFirstLine(t *testing.T) {
	text := "Alarm 7\nMain fault line\nleaked continuation line\n"

	e := NewAlarmExtractor(&stubClassifier{result: fixedClassification()}, 4000, nil)
	alarms := e.Extract(context.Background(), text)

	require.Len(t, alarms, 1)
	assert.Equal(t, "Main fault line", alarms[0].Description)
}

func TestExtractAlarmsHeaderLineTextIsNotDescription(t *testing.T) {
	// Decoration after the code on the header line is discarded; the
	// description is the following line.
	text := "Alarm 12 - see section 4\nGripper position fault\n"

	e := NewAlarmExtractor(&stubClassifier{result: fixedClassification()}, 4000, nil)
	alarms := e.Extract(context.Background(), text)

	require.Len(t, alarms, 1)
	assert.Equal(t, "12", alarms[0].AlarmID)
	assert.Equal(t, "Gripper position fault", alarms[0].Description)
}

func TestExtractAlarmsNoMatchesIsNotAnError(t *testing.T) {
	e := NewAlarmExtractor(&stubClassifier{result: fixedClassification()}, 4000, nil)
	alarms := e.Extract(context.Background(), "Routine lubrication instructions only.")
	assert.Empty(t, alarms)
}

func TestExtractAlarmsWithHeuristicChain(t *testing.T) {
	// End to end against the real terminal tier: no model endpoints, still
	// classified.
	text := "Alarm 0042\nBearing seizure on main drive\nCause: wear\n"

	e := NewAlarmExtractor(reason.NewChain(nil), 4000, nil)
	alarms := e.Extract(context.Background(), text)

	require.Len(t, alarms, 1)
	assert.Equal(t, "Mechanical", alarms[0].ReasonLevel2)
}
