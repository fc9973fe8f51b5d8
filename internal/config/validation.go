package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	switch c.TabWidth {
	case 2, 4, 8:
	default:
		errs = append(errs, "tab_width must be 2, 4 or 8")
	}
	if c.MaxFileSize < 1 {
		errs = append(errs, "max_file_size must be >= 1")
	}
	if c.BinarySampleSize < 1 {
		errs = append(errs, "binary_sample_size must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
