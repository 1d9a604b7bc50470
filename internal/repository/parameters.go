package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/o3sigma/manual-extractor/internal/entity"
)

type parameterRepository struct {
	db *gorm.DB
}

func NewParameterRepository(db *gorm.DB) ParameterRepository {
	return &parameterRepository{db: db}
}

func (r *parameterRepository) ListByHash(ctx context.Context, hash string) ([]entity.ParameterRecord, error) {
	var records []entity.ParameterRecord
	if err := r.db.WithContext(ctx).Where("source_hash = ?", hash).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list parameters by hash: %w", err)
	}
	return records, nil
}

func (r *parameterRepository) ListByMachine(ctx context.Context, machine string) ([]entity.ParameterRecord, error) {
	var records []entity.ParameterRecord
	if err := r.db.WithContext(ctx).Where("machine = ?", machine).Order("description").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list parameters by machine: %w", err)
	}
	return records, nil
}

func (r *parameterRepository) Save(ctx context.Context, parameters []entity.ParameterRecord) error {
	if len(parameters) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_hash"}, {Name: "description"}},
		UpdateAll: true,
	}).Create(&parameters).Error
	if err != nil {
		return fmt.Errorf("save parameters: %w", err)
	}
	return nil
}
