package config

// Config holds contour configuration.
// Stored at: $HOME/.contour/config.yaml or alongside the binary.
type Config struct {
	Extraction ExtractionCfg `mapstructure:"extraction" yaml:"extraction"`
	Batch      BatchCfg      `mapstructure:"batch" yaml:"batch"`
	Logging    LoggingCfg    `mapstructure:"logging" yaml:"logging"`
}

// ExtractionCfg tunes outline assembly.
type ExtractionCfg struct {
	// MaxEntries caps the outline size per document.
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries"`
}

// BatchCfg configures directory batch processing.
type BatchCfg struct {
	// Workers is the number of files processed concurrently.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// InputDir is the default directory scanned for PDFs.
	InputDir string `mapstructure:"input_dir" yaml:"input_dir"`
	// OutputDir is the default directory for outline JSON files.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// LoggingCfg configures the zap logger.
type LoggingCfg struct {
	// Style is one of terminal, json, noop.
	Style string `mapstructure:"style" yaml:"style"`
	// Level is a zap level name: debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultConfig returns configuration with sensible defaults. The batch
// directories default to the conventional container mount points.
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionCfg{
			MaxEntries: 100,
		},
		Batch: BatchCfg{
			Workers:   4,
			InputDir:  "/app/input",
			OutputDir: "/app/output",
		},
		Logging: LoggingCfg{
			Style: "terminal",
			Level: "info",
		},
	}
}
