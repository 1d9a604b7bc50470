// Package repository is the storage collaborator: processed-file records
// and extracted alarms/parameters keyed by content hash, backed by an
// embedded SQLite database.
package repository

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/o3sigma/manual-extractor/internal/entity"
)

// OpenDB opens (or creates) the SQLite database at path and migrates the
// record schema.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&entity.ProcessedFile{},
		&entity.AlarmRecord{},
		&entity.ParameterRecord{},
		&entity.ExportLog{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
