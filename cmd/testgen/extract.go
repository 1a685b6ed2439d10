// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/testgen/internal/catalog"
	"github.com/pdiddy/testgen/internal/extract"
	"github.com/pdiddy/testgen/internal/manifest"
	"github.com/pdiddy/testgen/pkg/types"
)

// extractionConfig assembles the extraction settings from flags,
// environment and config file.
func extractionConfig(v *viper.Viper) types.ExtractionConfig {
	return types.ExtractionConfig{
		StartToken:  v.GetString("start_token"),
		EndToken:    v.GetString("end_token"),
		Extension:   v.GetString("extension"),
		OutputDir:   v.GetString("output_dir"),
		OnDuplicate: types.DuplicatePolicy(v.GetString("on_duplicate")),
		DryRun:      v.GetBool("dry_run"),
	}
}

// runExtract splits the document at docPath, then writes the optional
// manifest and catalog records. Both are skipped when extraction fails.
func runExtract(cmd *cobra.Command, v *viper.Viper, docPath string, stderr io.Writer) error {
	cfg := extractionConfig(v)

	progress := io.Discard
	if v.GetBool("verbose") {
		progress = stderr
	}

	ex, err := extract.New(cfg, progress, stderr)
	if err != nil {
		return err
	}

	result, err := ex.Run(docPath)
	if err != nil {
		return err
	}

	if path := v.GetString("manifest"); path != "" {
		if err := manifest.Write(path, manifest.New(docPath, result.Regions, cfg.DryRun)); err != nil {
			return err
		}
		fmt.Fprintf(progress, "manifest: %s\n", path)
	}

	dbPath := v.GetString("catalog")
	if dbPath == "" || cfg.DryRun {
		return nil
	}

	source, err := filepath.Abs(docPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", docPath, err)
	}

	store, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.Record(cmd.Context(), source, result.Regions)
	if err != nil {
		return err
	}
	fmt.Fprintf(progress, "catalog: run %d recorded in %s\n", runID, dbPath)
	return nil
}
