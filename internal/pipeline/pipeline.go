// Package pipeline orchestrates one document's journey: fingerprint cache
// gate, text acquisition, content gating, record extraction, and
// persistence. Expected degradations (empty text, zero records, classifier
// fallthrough) surface as warnings; only persistence and malformed-cache
// failures make a run unsuccessful.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/o3sigma/manual-extractor/internal/entity"
	"github.com/o3sigma/manual-extractor/internal/pdftext"
	"github.com/o3sigma/manual-extractor/internal/repository"
)

// ProgressFunc receives human-readable step notifications for live trace
// display. It is a side channel only and never affects control flow.
type ProgressFunc func(step string)

// TextSource acquires plain text from raw document bytes.
type TextSource interface {
	ExtractText(fileBytes []byte) string
}

// AlarmSource extracts classified alarm records from text.
type AlarmSource interface {
	Extract(ctx context.Context, text string) []entity.AlarmRecord
}

// ParameterSource extracts parameter records from text.
type ParameterSource interface {
	Extract(text string) []entity.ParameterRecord
}

// BlobStore persists the original document bytes by content hash.
type BlobStore interface {
	Put(hash string, fileBytes []byte) error
}

// Pipeline processes uploaded manuals end to end. Each invocation owns its
// stage state; instances are safe to reuse sequentially across documents.
type Pipeline struct {
	gate       *Gate
	text       TextSource
	alarms     AlarmSource
	parameters ParameterSource
	files      repository.ProcessedFileRepository
	alarmRepo  repository.AlarmRepository
	paramRepo  repository.ParameterRepository
	blobs      BlobStore
	version    string
	logger     *slog.Logger
}

// Deps wires the pipeline's collaborators.
type Deps struct {
	Gate       *Gate
	Text       TextSource
	Alarms     AlarmSource
	Parameters ParameterSource
	Files      repository.ProcessedFileRepository
	AlarmRepo  repository.AlarmRepository
	ParamRepo  repository.ParameterRepository
	Blobs      BlobStore
	Version    string
	Logger     *slog.Logger
}

func New(deps Deps) *Pipeline {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Pipeline{
		gate:       deps.Gate,
		text:       deps.Text,
		alarms:     deps.Alarms,
		parameters: deps.Parameters,
		files:      deps.Files,
		alarmRepo:  deps.AlarmRepo,
		paramRepo:  deps.ParamRepo,
		blobs:      deps.Blobs,
		version:    deps.Version,
		logger:     deps.Logger,
	}
}

// Process runs the full extraction pipeline for one document.
func (p *Pipeline) Process(ctx context.Context, fileBytes []byte, filename, machine string, forceReprocess bool, progress ProgressFunc) *entity.ExtractionResult {
	start := time.Now()
	if progress == nil {
		progress = func(string) {}
	}

	result := &entity.ExtractionResult{
		Success:        true,
		Alarms:         []entity.AlarmRecord{},
		Parameters:     []entity.ParameterRecord{},
		Errors:         []string{},
		Warnings:       []string{},
		Trace:          []string{},
		Timings:        map[string]float64{},
		SourceFilename: filename,
	}
	step := func(msg string) {
		progress(msg)
		result.Trace = append(result.Trace, msg)
	}
	fail := func(msg string, err error) *entity.ExtractionResult {
		p.logger.Error("pipeline.failed", "stage", msg, "file", filename, "error", err)
		result.Success = false
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", msg, err))
		result.Timings["total"] = time.Since(start).Seconds()
		return result
	}

	// Step 1: fingerprint and cache gate.
	step("Step 1: Computing content fingerprint")
	gateStart := time.Now()
	gate, err := p.gate.Resolve(ctx, fileBytes, p.version, forceReprocess)
	result.SourceHash = gate.Hash
	result.Timings["fingerprint"] = time.Since(gateStart).Seconds()
	if err != nil {
		return fail("cache gate", err)
	}
	if gate.Hit {
		step("Cache HIT: returning stored records, extraction skipped")
		result.Alarms = gate.Alarms
		result.Parameters = gate.Parameters
		result.Timings["total"] = time.Since(start).Seconds()
		return result
	}

	// Step 2: text acquisition and content gating.
	step("Step 2: Parsing document text and gating content types")
	acquireStart := time.Now()
	text := p.text.ExtractText(fileBytes)
	result.Timings["acquire"] = time.Since(acquireStart).Seconds()
	result.SourceText = text

	if strings.TrimSpace(text) == "" {
		result.Warnings = append(result.Warnings, "no text could be extracted; document processed as empty")
	}
	profile := pdftext.ClassifyContent(text)
	step(fmt.Sprintf("Content analysis complete - alarms: %t, parameters: %t", profile.HasAlarms, profile.HasParameters))

	// Step 3A: alarm extraction with per-record classification.
	if profile.HasAlarms {
		step("Step 3A: Extracting alarm blocks (model classification may take a while)")
		alarmStart := time.Now()
		extracted := p.alarms.Extract(ctx, text)
		result.Timings["alarms"] = time.Since(alarmStart).Seconds()
		now := time.Now().UTC()
		for _, rec := range extracted {
			rec.Machine = machine
			rec.SourceHash = gate.Hash
			rec.SourceFile = filename
			rec.ExtractedAt = now
			// Levels 3/4 mirror cause/action unless classification set them.
			if rec.ReasonLevel3 == "" {
				rec.ReasonLevel3 = rec.Cause
			}
			if rec.ReasonLevel4 == "" {
				rec.ReasonLevel4 = rec.Action
			}
			result.Alarms = append(result.Alarms, rec)
		}
		step(fmt.Sprintf("Step 3A complete: %d alarm records", len(result.Alarms)))
	}

	// Step 3B: parameter extraction.
	if profile.HasParameters {
		step("Step 3B: Extracting parameter specifications")
		paramStart := time.Now()
		extracted := p.parameters.Extract(text)
		result.Timings["parameters"] = time.Since(paramStart).Seconds()
		now := time.Now().UTC()
		for _, rec := range extracted {
			rec.Machine = machine
			rec.SourceHash = gate.Hash
			rec.SourceFile = filename
			rec.ExtractedAt = now
			result.Parameters = append(result.Parameters, rec)
		}
		step(fmt.Sprintf("Step 3B complete: %d parameter records", len(result.Parameters)))
	}

	// Step 4: persistence. Silently dropping extracted work is worse than
	// reporting it, so storage errors fail the run.
	step("Step 4: Persisting records and registering document")
	persistStart := time.Now()
	if err := p.alarmRepo.Save(ctx, result.Alarms); err != nil {
		return fail("save alarms", err)
	}
	if err := p.paramRepo.Save(ctx, result.Parameters); err != nil {
		return fail("save parameters", err)
	}

	var tabs []string
	if profile.HasAlarms {
		tabs = append(tabs, "alarms")
	}
	if profile.HasParameters {
		tabs = append(tabs, "parameters")
	}
	counts, _ := json.Marshal(map[string]int{
		"alarms":     len(result.Alarms),
		"parameters": len(result.Parameters),
	})
	record := &entity.ProcessedFile{
		Hash:              gate.Hash,
		Filename:          filename,
		Machine:           machine,
		ProcessedAt:       time.Now().UTC(),
		TabsExtracted:     strings.Join(tabs, ","),
		RecordCounts:      counts,
		ExtractionVersion: p.version,
	}
	if err := p.files.Register(ctx, record); err != nil {
		return fail("register processed file", err)
	}
	if err := p.blobs.Put(gate.Hash, fileBytes); err != nil {
		return fail("store original document", err)
	}
	result.Timings["persist"] = time.Since(persistStart).Seconds()

	step("Pipeline complete")
	result.Timings["total"] = time.Since(start).Seconds()
	p.logger.Info("pipeline.done",
		"file", filename,
		"hash", gate.Hash,
		"alarms", len(result.Alarms),
		"parameters", len(result.Parameters),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result
}
