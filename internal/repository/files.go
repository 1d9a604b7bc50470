package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/o3sigma/manual-extractor/internal/entity"
)

type processedFileRepository struct {
	db *gorm.DB
}

func NewProcessedFileRepository(db *gorm.DB) ProcessedFileRepository {
	return &processedFileRepository{db: db}
}

func (r *processedFileRepository) Get(ctx context.Context, hash string) (*entity.ProcessedFile, error) {
	var record entity.ProcessedFile
	err := r.db.WithContext(ctx).First(&record, "hash = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get processed file: %w", err)
	}
	return &record, nil
}

func (r *processedFileRepository) Register(ctx context.Context, record *entity.ProcessedFile) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("register processed file: %w", err)
	}
	return nil
}

func (r *processedFileRepository) List(ctx context.Context) ([]entity.ProcessedFile, error) {
	var records []entity.ProcessedFile
	if err := r.db.WithContext(ctx).Order("processed_at desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list processed files: %w", err)
	}
	return records, nil
}

func (r *processedFileRepository) Delete(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ProcessedFile{}, "hash = ?", hash).Error; err != nil {
			return fmt.Errorf("delete processed file: %w", err)
		}
		if err := tx.Delete(&entity.AlarmRecord{}, "source_hash = ?", hash).Error; err != nil {
			return fmt.Errorf("delete alarms: %w", err)
		}
		if err := tx.Delete(&entity.ParameterRecord{}, "source_hash = ?", hash).Error; err != nil {
			return fmt.Errorf("delete parameters: %w", err)
		}
		return nil
	})
}

func (r *processedFileRepository) LogExport(ctx context.Context, entry *entity.ExportLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("log export: %w", err)
	}
	return nil
}
