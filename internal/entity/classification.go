package entity

// Classification is one taxonomy assignment for an alarm, produced by the
// reason classifier chain.
type Classification struct {
	ReasonLevel1 string  `json:"reason_level_1"`
	ReasonLevel2 string  `json:"reason_level_2"`
	CategoryType string  `json:"category_type"`
	Confidence   float64 `json:"confidence"`
	NeedsReview  bool    `json:"needs_review"`
}
