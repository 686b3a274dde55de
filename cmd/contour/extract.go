package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/contour/batch"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract the outline of a single PDF",
	Long: `Extract reads one PDF and prints its outline as JSON. If the file
cannot be parsed the empty outline is printed and the failure is logged,
so the output is always valid JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		p := batch.NewProcessor(batch.Options{
			MaxEntries: cfg.Extraction.MaxEntries,
			Logger:     logger,
		})

		o, err := p.ExtractFile(args[0])
		if err != nil {
			logger.Warn("extraction failed, emitting empty outline",
				zap.String("file", args[0]),
				zap.Error(err),
			)
		}

		if extractOutput != "" {
			return batch.WriteOutline(extractOutput, o)
		}

		data, err := batch.MarshalOutline(o)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(os.Stdout, string(data))
		return err
	},
}

func init() {
	extractCmd.Flags().StringVarP(
		&extractOutput, "output", "o", "", "write JSON to this file instead of stdout",
	)
}
