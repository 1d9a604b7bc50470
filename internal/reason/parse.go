package reason

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/o3sigma/manual-extractor/constants"
	"github.com/o3sigma/manual-extractor/internal/entity"
)

var (
	codeFenceRe  = regexp.MustCompile("```(?:json)?")
	jsonObjectRe = regexp.MustCompile(`\{[\s\S]+\}`)
)

// parseResponse extracts and validates the classification JSON from a raw
// model completion. Models wrap answers in code fences or prose despite
// instructions, so the first brace-delimited object is cut out before
// validation. Any shape violation is a tier failure, not a crash.
func parseResponse(raw string) (entity.Classification, error) {
	text := strings.TrimSpace(codeFenceRe.ReplaceAllString(raw, ""))
	obj := jsonObjectRe.FindString(text)
	if obj == "" {
		return entity.Classification{}, errors.New("no JSON object in response")
	}

	if err := validateAgainstSchema(buildClassificationSchema(), []byte(obj)); err != nil {
		return entity.Classification{}, err
	}

	var payload struct {
		ReasonLevel1 string   `json:"reason_level_1"`
		ReasonLevel2 string   `json:"reason_level_2"`
		CategoryType string   `json:"category_type"`
		Confidence   *float64 `json:"confidence"`
		NeedsReview  *bool    `json:"needs_review"`
	}
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return entity.Classification{}, fmt.Errorf("decode classification: %w", err)
	}

	confidence := 0.8
	if payload.Confidence != nil {
		confidence = math.Round(*payload.Confidence*100) / 100
	}
	needsReview := confidence < constants.ConfidenceThreshold
	if payload.NeedsReview != nil {
		needsReview = *payload.NeedsReview
	}

	return entity.Classification{
		ReasonLevel1: strings.TrimSpace(payload.ReasonLevel1),
		ReasonLevel2: strings.TrimSpace(payload.ReasonLevel2),
		CategoryType: constants.CanonicalCategoryType(payload.CategoryType),
		Confidence:   confidence,
		NeedsReview:  needsReview,
	}, nil
}
