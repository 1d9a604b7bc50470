package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/o3sigma/manual-extractor/constants"
	"github.com/o3sigma/manual-extractor/internal/blobstore"
	"github.com/o3sigma/manual-extractor/internal/common"
	"github.com/o3sigma/manual-extractor/internal/extract"
	"github.com/o3sigma/manual-extractor/internal/pdftext"
	"github.com/o3sigma/manual-extractor/internal/pipeline"
	"github.com/o3sigma/manual-extractor/internal/reason"
	"github.com/o3sigma/manual-extractor/internal/repository"
)

var processCmd = &cobra.Command{
	Use:   "process <manual.pdf> [more.pdf...]",
	Short: "Run the extraction pipeline over one or more manuals",
	Long: `Process fingerprints each document, extracts text with parser fallback,
gates on content type, extracts alarm and parameter records, classifies
alarms through the fallback chain, and persists everything keyed by the
document's content hash.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, _ := cmd.Flags().GetString("machine")
		force, _ := cmd.Flags().GetBool("force")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg := common.LoadConfig()
		if machine == "" {
			machine = cfg.App.DefaultMachine
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := slog.Default()
		db, err := repository.OpenDB(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		files := repository.NewProcessedFileRepository(db)
		alarmRepo := repository.NewAlarmRepository(db)
		paramRepo := repository.NewParameterRepository(db)
		blobs, err := blobstore.NewStore(cfg.Storage.FileStoreDir)
		if err != nil {
			return err
		}

		classifier := reason.NewClassifier(cfg.Classifier, logger)
		p := pipeline.New(pipeline.Deps{
			Gate:       pipeline.NewGate(files, alarmRepo, paramRepo, logger),
			Text:       pdftext.NewExtractor(logger),
			Alarms:     extract.NewAlarmExtractor(classifier, cfg.Extraction.ChunkSize, logger),
			Parameters: extract.NewParameterExtractor(constants.ParameterNoisePatterns, logger),
			Files:      files,
			AlarmRepo:  alarmRepo,
			ParamRepo:  paramRepo,
			Blobs:      blobs,
			Version:    cfg.Extraction.Version,
			Logger:     logger,
		})

		failed := 0
		for _, path := range args {
			fileBytes, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
				failed++
				continue
			}

			progress := func(step string) {
				fmt.Fprintf(os.Stderr, "  %s\n", step)
			}
			fmt.Fprintf(os.Stderr, "%s:\n", path)
			result := p.Process(cmd.Context(), fileBytes, filepath.Base(path), machine, force, progress)

			if asJSON {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			} else {
				fmt.Printf("%s: success=%t alarms=%d parameters=%d hash=%s\n",
					filepath.Base(path), result.Success, len(result.Alarms), len(result.Parameters), result.SourceHash)
				for _, w := range result.Warnings {
					fmt.Printf("  warning: %s\n", w)
				}
				for _, e := range result.Errors {
					fmt.Printf("  error: %s\n", e)
				}
			}
			if !result.Success {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d documents failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	processCmd.Flags().String("machine", "", "machine name stamped on extracted records (default from DEFAULT_MACHINE)")
	processCmd.Flags().Bool("force", false, "reprocess even when a current cached extraction exists")
	processCmd.Flags().Bool("json", false, "print the full extraction result as JSON")

	rootCmd.AddCommand(processCmd)
}
