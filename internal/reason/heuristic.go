package reason

import (
	"strings"

	"github.com/o3sigma/manual-extractor/constants"
	"github.com/o3sigma/manual-extractor/internal/entity"
)

// Domain word-lists for the terminal heuristic tier, matched in fixed
// priority order: electrical > instrumentation > software > mechanical.
var (
	electricalWords = []string{
		"electric", "voltage", "inverter", "drive", "contactor", "fuse",
		"relay", "arc", "wiring", "short circuit", "power supply", "amp",
	}
	instrumentationWords = []string{
		"sensor", "encoder", "limit switch", "photocell", "camera",
		"probe", "detector", "vision",
	}
	softwareWords = []string{
		"plc", "software", "program", "hmi", "timeout", "communication",
		"watchdog", "network", "bus", "fieldbus",
	}
	mechanicalWords = []string{
		"jam", "belt", "bearing", "hydraulic", "valve", "pump", "gear",
		"seal", "lubrication", "broken", "wear", "fracture", "pneumatic",
	}
	plannedWords = []string{
		"maintenance", "cleaning", "changeover", "scheduled", "cip",
		"lubrication round", "planned", "preventive",
	}
)

// Heuristic classifies by keyword matching alone. It cannot fail and is the
// chain's terminal fallback.
func Heuristic(description, cause string) entity.Classification {
	text := strings.ToLower(description + " " + cause)

	var (
		level2     constants.ReasonLevel2
		confidence float64
	)
	switch {
	case containsAny(text, electricalWords):
		level2, confidence = constants.Electrical, 0.75
	case containsAny(text, instrumentationWords):
		level2, confidence = constants.Instrumentation, 0.70
	case containsAny(text, softwareWords):
		level2, confidence = constants.SoftwareControl, 0.70
	case containsAny(text, mechanicalWords):
		level2, confidence = constants.Mechanical, 0.75
	default:
		level2, confidence = constants.Mechanical, 0.50
	}

	categoryType := constants.UnplannedDowntime
	if containsAny(text, plannedWords) {
		categoryType = constants.PlannedDowntime
	}

	return entity.Classification{
		ReasonLevel1: string(constants.BasicMachine),
		ReasonLevel2: string(level2),
		CategoryType: categoryType,
		Confidence:   confidence,
		NeedsReview:  confidence < constants.ConfidenceThreshold,
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
