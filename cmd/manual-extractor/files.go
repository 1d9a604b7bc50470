package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/o3sigma/manual-extractor/internal/common"
	"github.com/o3sigma/manual-extractor/internal/repository"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List processed documents and their extraction versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := common.LoadConfig()
		db, err := repository.OpenDB(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}

		records, err := repository.NewProcessedFileRepository(db).List(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range records {
			fmt.Printf("%s  %-30s machine=%s version=%s tabs=%s processed=%s\n",
				r.Hash, r.Filename, r.Machine, r.ExtractionVersion, r.TabsExtracted,
				r.ProcessedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var forgetCmd = &cobra.Command{
	Use:   "forget <hash>",
	Short: "Drop a processed document and all records extracted from it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := common.LoadConfig()
		db, err := repository.OpenDB(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		return repository.NewProcessedFileRepository(db).Delete(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(forgetCmd)
}
