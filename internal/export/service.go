package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/o3sigma/manual-extractor/internal/entity"
	"github.com/o3sigma/manual-extractor/internal/repository"
)

// Service loads a machine's stored records and produces the XLSX workbook.
type Service struct {
	files     repository.ProcessedFileRepository
	alarmRepo repository.AlarmRepository
	paramRepo repository.ParameterRepository
	outputDir string
	logger    *slog.Logger
}

func NewService(files repository.ProcessedFileRepository, alarms repository.AlarmRepository, params repository.ParameterRepository, outputDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		files:     files,
		alarmRepo: alarms,
		paramRepo: params,
		outputDir: outputDir,
		logger:    logger,
	}
}

// ExportMachineXLSX writes the phase-1 workbook for one machine and returns
// the file path. The export is recorded in the export history.
func (s *Service) ExportMachineXLSX(ctx context.Context, machine string) (string, error) {
	start := time.Now()

	alarms, err := s.alarmRepo.ListByMachine(ctx, machine)
	if err != nil {
		return "", fmt.Errorf("load alarms: %w", err)
	}
	parameters, err := s.paramRepo.ListByMachine(ctx, machine)
	if err != nil {
		return "", fmt.Errorf("load parameters: %w", err)
	}

	tabs := BuildTabs(machine, alarms, parameters, []int{1, 2, 3})
	workbook, err := writeWorkbook(tabs)
	if err != nil {
		return "", fmt.Errorf("build workbook: %w", err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	filename := fmt.Sprintf("%s_%s.xlsx", machine, time.Now().Format("20060102150405"))
	path := filepath.Join(s.outputDir, filename)
	if err := workbook.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	tabNames := make([]string, len(tabs))
	for i, t := range tabs {
		tabNames[i] = t.Name
	}
	counts, _ := json.Marshal(map[string]int{"alarms": len(alarms), "parameters": len(parameters)})
	if err := s.files.LogExport(ctx, &entity.ExportLog{
		Machine:      machine,
		Filename:     filename,
		TabsExported: strings.Join(tabNames, ","),
		RecordCounts: counts,
		ExportedAt:   time.Now().UTC(),
	}); err != nil {
		return "", err
	}

	s.logger.Info("export.done",
		"machine", machine,
		"path", path,
		"alarms", len(alarms),
		"parameters", len(parameters),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

// writeWorkbook renders tabs into a workbook. Fault-code columns get the
// text number format so spreadsheet tools keep leading zeros.
func writeWorkbook(tabs []Tab) (*excelize.File, error) {
	f := excelize.NewFile()

	for _, tab := range tabs {
		if _, err := f.NewSheet(tab.Name); err != nil {
			return nil, err
		}
		for col, header := range tab.Columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(tab.Name, cell, header); err != nil {
				return nil, err
			}
		}
		for rowIdx, row := range tab.Rows {
			for col, value := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err := f.SetCellValue(tab.Name, cell, value); err != nil {
					return nil, err
				}
			}
		}
		if err := applyTextFormat(f, tab, "Fault Code *"); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet once real tabs exist.
	if len(tabs) > 0 {
		_ = f.DeleteSheet("Sheet1")
	}
	return f, nil
}

func applyTextFormat(f *excelize.File, tab Tab, column string) error {
	colIdx := -1
	for i, c := range tab.Columns {
		if c == column {
			colIdx = i
			break
		}
	}
	if colIdx < 0 || len(tab.Rows) == 0 {
		return nil
	}
	// Built-in number format 49 is "@" (text).
	styleID, err := f.NewStyle(&excelize.Style{NumFmt: 49})
	if err != nil {
		return err
	}
	top, _ := excelize.CoordinatesToCellName(colIdx+1, 2)
	bottom, _ := excelize.CoordinatesToCellName(colIdx+1, len(tab.Rows)+1)
	return f.SetCellStyle(tab.Name, top, bottom, styleID)
}
