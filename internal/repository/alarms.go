package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/o3sigma/manual-extractor/internal/entity"
)

type alarmRepository struct {
	db *gorm.DB
}

func NewAlarmRepository(db *gorm.DB) AlarmRepository {
	return &alarmRepository{db: db}
}

func (r *alarmRepository) ListByHash(ctx context.Context, hash string) ([]entity.AlarmRecord, error) {
	var records []entity.AlarmRecord
	if err := r.db.WithContext(ctx).Where("source_hash = ?", hash).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list alarms by hash: %w", err)
	}
	return records, nil
}

func (r *alarmRepository) ListByMachine(ctx context.Context, machine string) ([]entity.AlarmRecord, error) {
	var records []entity.AlarmRecord
	if err := r.db.WithContext(ctx).Where("machine = ?", machine).Order("alarm_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list alarms by machine: %w", err)
	}
	return records, nil
}

func (r *alarmRepository) Save(ctx context.Context, alarms []entity.AlarmRecord) error {
	if len(alarms) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_hash"}, {Name: "alarm_id"}},
		UpdateAll: true,
	}).Create(&alarms).Error
	if err != nil {
		return fmt.Errorf("save alarms: %w", err)
	}
	return nil
}
