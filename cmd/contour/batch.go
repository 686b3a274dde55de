package main

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/contour/batch"
)

var (
	batchInput   string
	batchOutput  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of PDFs into outline JSON files",
	Long: `Batch scans the input directory for *.pdf files and writes one
same-named .json outline per input into the output directory. Files that
cannot be parsed produce the empty outline; no input is ever skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		input := cfg.Batch.InputDir
		if batchInput != "" {
			input = batchInput
		}
		output := cfg.Batch.OutputDir
		if batchOutput != "" {
			output = batchOutput
		}
		workers := cfg.Batch.Workers
		if batchWorkers > 0 {
			workers = batchWorkers
		}

		p := batch.NewProcessor(batch.Options{
			Workers:    workers,
			MaxEntries: cfg.Extraction.MaxEntries,
			Logger:     logger,
		})
		return p.Run(cmd.Context(), input, output)
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "input directory (default from config)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output directory (default from config)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent workers (default from config)")
}
