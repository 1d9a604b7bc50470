// Package main is the entry point for the manual-extractor CLI: it ingests
// equipment-manual PDFs, extracts alarm and parameter records, and exports
// them as tabbed workbooks.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "manual-extractor",
	Short: "Extract structured alarm and parameter records from equipment manuals",
	Long: `manual-extractor ingests scanned or digital equipment manuals (PDF) and
turns unstructured maintenance text into structured records: alarm/fault
definitions and tunable process parameters.

Processing is content-addressed: a document is fingerprinted by hash and
reprocessed only when the extraction version changes or a reprocess is
forced. Alarm taxonomy labels come from a layered classifier (remote model,
local model, keyword heuristic).`,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
