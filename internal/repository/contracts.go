package repository

import (
	"context"

	"github.com/o3sigma/manual-extractor/internal/entity"
)

// ProcessedFileRepository is the cache-gate store. Get returns (nil, nil)
// when no record exists for the hash.
type ProcessedFileRepository interface {
	Get(ctx context.Context, hash string) (*entity.ProcessedFile, error)
	Register(ctx context.Context, record *entity.ProcessedFile) error
	List(ctx context.Context) ([]entity.ProcessedFile, error)
	// Delete removes the processed-file record and every alarm/parameter
	// extracted from that document.
	Delete(ctx context.Context, hash string) error
	LogExport(ctx context.Context, entry *entity.ExportLog) error
}

// AlarmRepository upserts by (SourceHash, AlarmID).
type AlarmRepository interface {
	ListByHash(ctx context.Context, hash string) ([]entity.AlarmRecord, error)
	ListByMachine(ctx context.Context, machine string) ([]entity.AlarmRecord, error)
	Save(ctx context.Context, alarms []entity.AlarmRecord) error
}

// ParameterRepository upserts by (SourceHash, Description).
type ParameterRepository interface {
	ListByHash(ctx context.Context, hash string) ([]entity.ParameterRecord, error)
	ListByMachine(ctx context.Context, machine string) ([]entity.ParameterRecord, error)
	Save(ctx context.Context, parameters []entity.ParameterRecord) error
}
