package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/contour/internal/config"
	"github.com/tsawler/contour/logging"
	"github.com/tsawler/contour/version"
)

var (
	cfgFile  string
	logStyle string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "contour",
	Short: "Multilingual PDF outline extraction",
	Long: `Contour extracts document outlines (title plus H1/H2/H3 headings with
page numbers) from PDF files using typographic and pattern heuristics.

No machine learning, no network access: headings are found from font
sizes, boldness, numbering schemes, and localized section keywords, with
script-aware rules for Latin, Cyrillic, Arabic, and CJK documents.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.contour/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logStyle, "log-style", "", "log style: terminal, json, noop (default from config)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)",
	)

	rootCmd.AddCommand(extractCmd, batchCmd, initCmd, versionCmd)
}

// setup loads configuration and builds the logger, applying flag
// overrides on top of file and environment values.
func setup() (*config.Config, *zap.Logger, error) {
	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	cfg := cm.Get()

	style := cfg.Logging.Style
	if logStyle != "" {
		style = logStyle
	}
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}

	logger, err := logging.NewLogger(&logging.Config{
		Style: logging.Style(style),
		Level: level,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
