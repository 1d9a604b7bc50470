package constants

import "strings"

// ReasonLevel1 is the top-level downtime taxonomy bucket for an alarm.
type ReasonLevel1 string

const (
	AutomationProcess ReasonLevel1 = "Automation, Process and Specialized Alarms"
	BasicMachine      ReasonLevel1 = "Basic Machine and Safety Faults"
	RinserCapper      ReasonLevel1 = "Rinser, Capper and Advanced Safety"
)

var allReasonLevel1 = []ReasonLevel1{
	AutomationProcess,
	BasicMachine,
	RinserCapper,
}

// ReasonLevel1Categories returns the closed level-1 taxonomy as strings,
// in the order they are presented to the model.
func ReasonLevel1Categories() []string {
	result := make([]string, len(allReasonLevel1))
	for i, c := range allReasonLevel1 {
		result[i] = string(c)
	}
	return result
}

// ReasonLevel2 is the failure-domain label for an alarm.
type ReasonLevel2 string

const (
	Electrical      ReasonLevel2 = "Electrical"
	Mechanical      ReasonLevel2 = "Mechanical"
	Instrumentation ReasonLevel2 = "Sensor/Instrumentation"
	SoftwareControl ReasonLevel2 = "Software/Control"
	ProcessQuality  ReasonLevel2 = "Process/Quality"
)

var allReasonLevel2 = []ReasonLevel2{
	Electrical,
	Mechanical,
	Instrumentation,
	SoftwareControl,
	ProcessQuality,
}

// ReasonLevel2Domains returns the closed level-2 taxonomy as strings.
func ReasonLevel2Domains() []string {
	result := make([]string, len(allReasonLevel2))
	for i, d := range allReasonLevel2 {
		result[i] = string(d)
	}
	return result
}

// Category types for downtime classification.
const (
	PlannedDowntime   = "Planned Downtime"
	UnplannedDowntime = "Unplanned Downtime"
)

// CanonicalCategoryType normalizes a model-supplied category label to one of
// the two downtime categories. "unplanned downtime" contains "planned", so
// the unplanned check runs first.
func CanonicalCategoryType(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if strings.Contains(normalized, "planned") && !strings.Contains(normalized, "unplanned") {
		return PlannedDowntime
	}
	return UnplannedDowntime
}
