package export

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/o3sigma/manual-extractor/internal/entity"
	"github.com/o3sigma/manual-extractor/internal/repository"
)

func TestExportMachineXLSX(t *testing.T) {
	db, err := repository.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	files := repository.NewProcessedFileRepository(db)
	alarms := repository.NewAlarmRepository(db)
	params := repository.NewParameterRepository(db)
	ctx := context.Background()

	require.NoError(t, alarms.Save(ctx, []entity.AlarmRecord{{
		AlarmID:      "282",
		Description:  "Drive fault",
		ReasonLevel1: "Basic Machine and Safety Faults",
		ReasonLevel2: "Electrical",
		CategoryType: "Unplanned Downtime",
		Machine:      "KHS_Filler",
		SourceHash:   "hash1",
		ExtractedAt:  time.Now().UTC(),
	}}))
	target := 120.0
	require.NoError(t, params.Save(ctx, []entity.ParameterRecord{{
		Description: "Stroke",
		Target:      &target,
		Unit:        "mm",
		Machine:     "KHS_Filler",
		SourceHash:  "hash1",
	}}))

	outDir := t.TempDir()
	svc := NewService(files, alarms, params, outDir, nil)

	path, err := svc.ExportMachineXLSX(ctx, "KHS_Filler")
	require.NoError(t, err)
	assert.Equal(t, outDir, filepath.Dir(path))

	workbook, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	assert.Contains(t, sheets, "Machine Details")
	assert.Contains(t, sheets, "OEE")
	assert.Contains(t, sheets, "Downtime Configuration")
	assert.Contains(t, sheets, "Parameter Specifications")
	assert.NotContains(t, sheets, "Sheet1", "default sheet removed")

	code, err := workbook.GetCellValue("Downtime Configuration", "G2")
	require.NoError(t, err)
	assert.Equal(t, "0282", code, "padded fault code survives the round trip")

	desc, err := workbook.GetCellValue("Parameter Specifications", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Stroke", desc)
}

func TestExportRecordsHistory(t *testing.T) {
	db, err := repository.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	files := repository.NewProcessedFileRepository(db)
	alarms := repository.NewAlarmRepository(db)
	params := repository.NewParameterRepository(db)

	svc := NewService(files, alarms, params, t.TempDir(), nil)

	_, err = svc.ExportMachineXLSX(context.Background(), "KHS_Filler")
	require.NoError(t, err)

	var entries []entity.ExportLog
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "KHS_Filler", entries[0].Machine)
	assert.Contains(t, entries[0].TabsExported, "Downtime Configuration")
}
