package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	// TabWidth is the tab stop width used when no width flag is given.
	// Must be 2, 4 or 8.
	TabWidth int `json:"tab_width"` // Default: 4

	// MaxFileSize bounds the files the converter will load into memory.
	MaxFileSize int64 `json:"max_file_size"` // Default: 20 * 1024 * 1024 (20MB)

	// BinarySampleSize is the number of leading bytes sampled when
	// deciding whether a file is binary.
	BinarySampleSize int `json:"binary_sample_size"` // Default: 8192

	// Profiles are named option bundles selectable with --profile.
	// Each profile is a loose map decoded on demand, so a broken profile
	// only fails when selected.
	Profiles map[string]map[string]any `json:"profiles"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TabWidth:         4,
		MaxFileSize:      20 * 1024 * 1024,
		BinarySampleSize: 8192,
	}
}
