package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/o3sigma/manual-extractor/constants"
	"github.com/o3sigma/manual-extractor/internal/entity"
)

// Parameter line grammar, tried in fixed priority order per line:
//
//	tolerance:  "Clamping force 2000 +/- 50 kN"  -> target 2000, lsl 1950, usl 2050
//	range:      "Temperature 180 - 220 C"        -> target 200 (midpoint), lsl 180, usl 220
//	single:     "Stroke 120 mm"                  -> target 120
var (
	toleranceRe = regexp.MustCompile(`([A-Za-z\s]+)\s+(\d+(?:\.\d+)?)\s*(?:±|\+/-)\s*(\d+(?:\.\d+)?)\s*([a-zA-Z%]+(?:/[a-zA-Z]+)?)`)
	rangeRe     = regexp.MustCompile(`([A-Za-z\s]+)\s+(\d+(?:\.\d+)?)\s*(?:-|to|\.\.\.)\s*(\d+(?:\.\d+)?)\s*([a-zA-Z%]+(?:/[a-zA-Z]+)?)`)
	singleRe    = regexp.MustCompile(`([A-Za-z\s]+)\s+(\d+(?:\.\d+)?)\s*([a-zA-Z%]+(?:/[a-zA-Z]+)?)`)
)

// ParameterExtractor reads one specification per line. Unlike alarms the
// input is not chunked: parameter tables are line-oriented.
type ParameterExtractor struct {
	noisePatterns []*regexp.Regexp
	logger        *slog.Logger
}

// NewParameterExtractor compiles the noise-pattern set; nil patterns means
// the default set (alarm-block artifacts like "Cause:" lines).
func NewParameterExtractor(noisePatterns []string, logger *slog.Logger) *ParameterExtractor {
	if noisePatterns == nil {
		noisePatterns = constants.ParameterNoisePatterns
	}
	if logger == nil {
		logger = slog.Default()
	}
	compiled := make([]*regexp.Regexp, 0, len(noisePatterns))
	for _, p := range noisePatterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return &ParameterExtractor{noisePatterns: compiled, logger: logger}
}

// Extract scans the text line by line. Duplicate descriptions collapse
// last-wins: later table revisions in a manual supersede earlier ones. This
// is deliberately the opposite of alarm dedup.
func (e *ParameterExtractor) Extract(text string) []entity.ParameterRecord {
	start := time.Now()

	order := make([]string, 0)
	byDesc := make(map[string]entity.ParameterRecord)
	matched := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || e.isNoise(line) {
			continue
		}
		rec, ok := parseParameterLine(line)
		if !ok {
			continue
		}
		matched++
		if _, exists := byDesc[rec.Description]; !exists {
			order = append(order, rec.Description)
		}
		byDesc[rec.Description] = rec
	}

	records := make([]entity.ParameterRecord, 0, len(order))
	for _, desc := range order {
		records = append(records, byDesc[desc])
	}

	e.logger.Info("extract.parameters.done",
		"matched", matched,
		"unique", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return records
}

func (e *ParameterExtractor) isNoise(line string) bool {
	for _, p := range e.noisePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func parseParameterLine(line string) (entity.ParameterRecord, bool) {
	var (
		desc, unit       string
		target, lsl, usl *float64
	)

	if m := toleranceRe.FindStringSubmatch(line); m != nil {
		value := mustFloat(m[2])
		tolerance := mustFloat(m[3])
		desc, unit = strings.TrimSpace(m[1]), strings.TrimSpace(m[4])
		target = &value
		lsl = ptr(value - tolerance)
		usl = ptr(value + tolerance)
	} else if m := rangeRe.FindStringSubmatch(line); m != nil {
		low := mustFloat(m[2])
		high := mustFloat(m[3])
		desc, unit = strings.TrimSpace(m[1]), strings.TrimSpace(m[4])
		target = ptr((low + high) / 2)
		lsl = &low
		usl = &high
	} else if m := singleRe.FindStringSubmatch(line); m != nil {
		value := mustFloat(m[2])
		desc, unit = strings.TrimSpace(m[1]), strings.TrimSpace(m[3])
		target = &value
	} else {
		return entity.ParameterRecord{}, false
	}

	// Too short is probably a stray token; too many words is probably an
	// ordinary prose sentence that happens to contain a number.
	if len(desc) < 3 || len(strings.Fields(desc)) > 5 {
		return entity.ParameterRecord{}, false
	}

	return entity.ParameterRecord{
		Description: desc,
		Target:      target,
		Unit:        unit,
		LSL:         lsl,
		USL:         usl,
	}, true
}

func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func ptr(v float64) *float64 {
	return &v
}
