package reason

import (
	"strings"

	"github.com/o3sigma/manual-extractor/constants"
)

// BuildPrompt composes the classification prompt for one alarm. The model
// must answer with a single JSON object matching the classification schema.
func BuildPrompt(description, cause string) string {
	if strings.TrimSpace(cause) == "" {
		cause = "not specified"
	}

	var b strings.Builder
	b.WriteString("You are classifying an industrial alarm for a manufacturing downtime taxonomy.\n")
	b.WriteString("Return ONLY a valid JSON object - no explanation, no markdown, no code fences.\n\n")
	b.WriteString("Alarm description: " + description + "\n")
	b.WriteString("Cause: " + cause + "\n\n")
	b.WriteString("Classify into the following schema:\n")
	b.WriteString("  reason_level_1: one of [" + strings.Join(constants.ReasonLevel1Categories(), " | ") + "]\n")
	b.WriteString("  reason_level_2: " + strings.Join(constants.ReasonLevel2Domains(), " | ") + "\n")
	b.WriteString("  category_type:  Planned Downtime | Unplanned Downtime\n")
	b.WriteString("  confidence:     float 0.0-1.0 representing your certainty\n")
	b.WriteString("  needs_review:   true if confidence < 0.7, otherwise false\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Planned Downtime = scheduled maintenance, cleaning (CIP), changeover, lubrication rounds\n")
	b.WriteString("- Unplanned Downtime = all breakdowns, faults, unexpected stops\n")
	b.WriteString("- confidence 1.0 = alarm text unambiguously maps to the category\n")
	b.WriteString("- confidence 0.5 = ambiguous alarm text, classify by best guess\n\n")
	b.WriteString(`Return exactly this structure:` + "\n")
	b.WriteString(`{"reason_level_1": "...", "reason_level_2": "...", "category_type": "...", "confidence": 0.0, "needs_review": false}`)
	return b.String()
}
