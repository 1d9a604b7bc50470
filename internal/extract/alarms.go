// Package extract turns acquired manual text into structured alarm and
// parameter records. Matching is regex-driven on purpose: manual formats are
// too irregular for a general parser, so each extractor is a small ordered
// grammar behind a plain Extract method.
package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/o3sigma/manual-extractor/constants"
	"github.com/o3sigma/manual-extractor/internal/entity"
)

// ReasonClassifier labels one alarm; satisfied by reason.Classifier.
type ReasonClassifier interface {
	Classify(ctx context.Context, description, cause string) entity.Classification
}

var (
	// A block starts with Alarm/Error/Fault plus a 1-5 digit code. Text on
	// the header line after the code is decoration, not the description.
	alarmHeaderRe = regexp.MustCompile(`(?im)^[ \t]*(?:alarm|error|fault)[ \t]*[:\-]?[ \t]*(\d{1,5})[ \t.\-:]*.*$`)
	causeLineRe   = regexp.MustCompile(`(?i)^[ \t]*cause:[ \t]*(.*)$`)
	actionLineRe  = regexp.MustCompile(`(?i)^[ \t]*(?:reaction|remedy|action):[ \t]*(.*)$`)
)

// AlarmExtractor finds alarm definition blocks and classifies each one.
type AlarmExtractor struct {
	classifier ReasonClassifier
	chunkSize  int
	logger     *slog.Logger
}

func NewAlarmExtractor(classifier ReasonClassifier, chunkSize int, logger *slog.Logger) *AlarmExtractor {
	if chunkSize <= 0 {
		chunkSize = constants.DefaultChunkSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AlarmExtractor{classifier: classifier, chunkSize: chunkSize, logger: logger}
}

// Extract chunks the text, matches alarm blocks per chunk, classifies each
// record, and collapses duplicates by alarm ID (first occurrence wins -
// manuals commonly repeat the same alarm table across pages).
func (e *AlarmExtractor) Extract(ctx context.Context, text string) []entity.AlarmRecord {
	start := time.Now()

	var all []entity.AlarmRecord
	chunks := chunkText(text, e.chunkSize)
	for _, chunk := range chunks {
		for _, rec := range parseAlarmBlocks(chunk) {
			cls := e.classifier.Classify(ctx, rec.Description, rec.Cause)
			rec.ReasonLevel1 = cls.ReasonLevel1
			rec.ReasonLevel2 = cls.ReasonLevel2
			rec.CategoryType = cls.CategoryType
			all = append(all, rec)
		}
	}

	seen := make(map[string]struct{}, len(all))
	unique := make([]entity.AlarmRecord, 0, len(all))
	for _, rec := range all {
		if _, dup := seen[rec.AlarmID]; dup {
			continue
		}
		seen[rec.AlarmID] = struct{}{}
		unique = append(unique, rec)
	}

	e.logger.Info("extract.alarms.done",
		"chunks", len(chunks),
		"matched", len(all),
		"unique", len(unique),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return unique
}

// parseAlarmBlocks slices one chunk into blocks bounded by consecutive
// alarm headers and reads description/cause/action out of each block.
func parseAlarmBlocks(chunk string) []entity.AlarmRecord {
	headers := alarmHeaderRe.FindAllStringSubmatchIndex(chunk, -1)

	var records []entity.AlarmRecord
	for i, loc := range headers {
		blockEnd := len(chunk)
		if i+1 < len(headers) {
			blockEnd = headers[i+1][0]
		}
		alarmID := strings.TrimSpace(chunk[loc[2]:loc[3]])
		body := chunk[loc[1]:blockEnd]

		rec, ok := parseAlarmBody(body)
		if !ok {
			continue
		}
		rec.AlarmID = alarmID
		records = append(records, rec)
	}
	return records
}

func parseAlarmBody(body string) (entity.AlarmRecord, bool) {
	var descLines []string
	var cause, action string
	for _, line := range strings.Split(body, "\n") {
		if m := causeLineRe.FindStringSubmatch(line); m != nil {
			cause = strings.TrimSpace(m[1])
			continue
		}
		if m := actionLineRe.FindStringSubmatch(line); m != nil {
			action = strings.TrimSpace(m[1])
			continue
		}
		if cause == "" && action == "" {
			descLines = append(descLines, line)
		}
	}

	desc := strings.TrimSpace(strings.Join(descLines, "\n"))
	if desc == "" {
		// Header with no fault text is noise, not a record.
		return entity.AlarmRecord{}, false
	}
	// Multi-line leakage is common; the description is the first line only.
	desc = strings.TrimSpace(strings.SplitN(desc, "\n", 2)[0])

	return entity.AlarmRecord{
		Description: desc,
		Cause:       cause,
		Action:      action,
	}, true
}
