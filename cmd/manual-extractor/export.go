package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/o3sigma/manual-extractor/internal/common"
	"github.com/o3sigma/manual-extractor/internal/export"
	"github.com/o3sigma/manual-extractor/internal/repository"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the tabbed XLSX workbook for a machine's stored records",
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, _ := cmd.Flags().GetString("machine")

		cfg := common.LoadConfig()
		if machine == "" {
			machine = cfg.App.DefaultMachine
		}

		db, err := repository.OpenDB(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		svc := export.NewService(
			repository.NewProcessedFileRepository(db),
			repository.NewAlarmRepository(db),
			repository.NewParameterRepository(db),
			cfg.App.OutputDir,
			slog.Default(),
		)

		path, err := svc.ExportMachineXLSX(cmd.Context(), machine)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("machine", "", "machine whose records to export (default from DEFAULT_MACHINE)")

	rootCmd.AddCommand(exportCmd)
}
