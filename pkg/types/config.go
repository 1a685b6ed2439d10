// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Default marker tokens and output extension for Lox test documents.
const (
	DefaultStartToken = "#test"
	DefaultEndToken   = "#end"
	DefaultExtension  = ".lox"
)

// DuplicatePolicy selects what happens when two regions normalize to the
// same output file.
type DuplicatePolicy string

const (
	// DuplicateWarn overwrites the earlier file and reports a warning.
	DuplicateWarn DuplicatePolicy = "warn"
	// DuplicateOverwrite overwrites the earlier file silently.
	DuplicateOverwrite DuplicatePolicy = "overwrite"
	// DuplicateError aborts the run before the second file is written.
	DuplicateError DuplicatePolicy = "error"
)

// ExtractionConfig holds settings for splitting a test document into files.
type ExtractionConfig struct {
	// StartToken opens a region when found anywhere in a line (default "#test").
	StartToken string `json:"start_token" yaml:"start_token"`

	// EndToken closes the open region when found anywhere in a line (default "#end").
	EndToken string `json:"end_token" yaml:"end_token"`

	// Extension is appended to the normalized label (default ".lox").
	Extension string `json:"extension" yaml:"extension"`

	// OutputDir overrides the directory files are written to. Empty means
	// the directory containing the input document.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// OnDuplicate selects the duplicate label policy (default "warn").
	OnDuplicate DuplicatePolicy `json:"on_duplicate" yaml:"on_duplicate"`

	// DryRun scans and reports regions without writing any files.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// DefaultExtractionConfig returns the configuration matching the original
// Lox test generator.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		StartToken:  DefaultStartToken,
		EndToken:    DefaultEndToken,
		Extension:   DefaultExtension,
		OnDuplicate: DuplicateWarn,
	}
}

// Validate fills empty fields with defaults and rejects unusable values.
func (c *ExtractionConfig) Validate() error {
	if c.StartToken == "" {
		c.StartToken = DefaultStartToken
	}
	if c.EndToken == "" {
		c.EndToken = DefaultEndToken
	}
	if c.StartToken == c.EndToken {
		return fmt.Errorf("start and end tokens must differ (both %q)", c.StartToken)
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("extension %q must not contain a path separator", c.Extension)
	}

	switch c.OnDuplicate {
	case "":
		c.OnDuplicate = DuplicateWarn
	case DuplicateWarn, DuplicateOverwrite, DuplicateError:
	default:
		return fmt.Errorf("unknown duplicate policy %q (want warn, overwrite, or error)", c.OnDuplicate)
	}
	return nil
}
