package pipeline

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/o3sigma/manual-extractor/internal/entity"
	"github.com/o3sigma/manual-extractor/internal/repository"
)

// Fingerprint computes the content hash that identifies a document for the
// lifetime of the system. It is recomputed from the raw bytes on every call,
// never trusted from caller input.
func Fingerprint(fileBytes []byte) string {
	sum := md5.Sum(fileBytes)
	return hex.EncodeToString(sum[:])
}

// GateResult is the cache-gate decision for one document.
type GateResult struct {
	Hash string
	Hit  bool
	// Populated only on a hit.
	Alarms     []entity.AlarmRecord
	Parameters []entity.ParameterRecord
}

// Gate decides hit or miss against the stored extraction-version tag and
// hydrates cached records on a hit.
type Gate struct {
	files  repository.ProcessedFileRepository
	alarms repository.AlarmRepository
	params repository.ParameterRepository
	logger *slog.Logger
}

func NewGate(files repository.ProcessedFileRepository, alarms repository.AlarmRepository, params repository.ParameterRepository, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{files: files, alarms: alarms, params: params, logger: logger}
}

// Resolve declares a hit only when a processed-file record exists, its
// stored version equals the current extraction version, and the caller has
// not forced a reprocess. Every other combination is a miss.
func (g *Gate) Resolve(ctx context.Context, fileBytes []byte, version string, forceReprocess bool) (GateResult, error) {
	hash := Fingerprint(fileBytes)
	result := GateResult{Hash: hash}

	record, err := g.files.Get(ctx, hash)
	if err != nil {
		return result, fmt.Errorf("cache lookup: %w", err)
	}
	if record == nil || forceReprocess || record.ExtractionVersion != version {
		g.logger.Info("pipeline.gate.miss",
			"hash", hash,
			"known", record != nil,
			"force", forceReprocess,
		)
		return result, nil
	}

	alarms, err := g.alarms.ListByHash(ctx, hash)
	if err != nil {
		return result, fmt.Errorf("hydrate cached alarms: %w", err)
	}
	params, err := g.params.ListByHash(ctx, hash)
	if err != nil {
		return result, fmt.Errorf("hydrate cached parameters: %w", err)
	}

	g.logger.Info("pipeline.gate.hit", "hash", hash, "alarms", len(alarms), "parameters", len(params))
	result.Hit = true
	result.Alarms = alarms
	result.Parameters = params
	return result, nil
}
