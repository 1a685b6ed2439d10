// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract splits a test document into one file per marked region.
// A region opens on a line containing the start token, takes its file name
// from the "(label)" on that line, and closes on the next line containing
// the end token. The lines in between are written verbatim.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/testgen/pkg/types"
)

// Result holds the outcome of an extraction run. On error it describes the
// regions handled before the failure; their files stay on disk.
type Result struct {
	Source      string
	Regions     []types.Region
	Overwritten int
}

// Total returns the number of regions extracted.
func (r Result) Total() int {
	return len(r.Regions)
}

// Extractor writes the regions of a document to files.
type Extractor struct {
	cfg  types.ExtractionConfig
	log  io.Writer
	warn io.Writer
}

// New validates cfg and returns an Extractor. Progress lines go to log and
// duplicate-label warnings to warn; either may be io.Discard.
func New(cfg types.ExtractionConfig, log, warn io.Writer) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extraction config: %w", err)
	}
	return &Extractor{cfg: cfg, log: log, warn: warn}, nil
}

// Run loads the document at inputPath and extracts every region from it.
func (e *Extractor) Run(inputPath string) (Result, error) {
	doc, err := LoadDocument(inputPath)
	if err != nil {
		return Result{Source: inputPath}, err
	}
	return e.Extract(doc)
}

// Extract scans doc and writes each region as soon as its end marker is
// found. The first error aborts the scan.
func (e *Extractor) Extract(doc *Document) (Result, error) {
	result := Result{Source: doc.Path}

	outDir := doc.Dir
	if e.cfg.OutputDir != "" {
		outDir = e.cfg.OutputDir
		if !e.cfg.DryRun {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return result, fmt.Errorf("creating output directory: %w", err)
			}
		}
	}

	firstLine := make(map[string]int)
	scanner := NewScanner(doc, e.cfg.StartToken, e.cfg.EndToken)

	for {
		region, err := scanner.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, err
		}

		region.Path = filepath.Join(outDir, region.Name+e.cfg.Extension)

		if prev, seen := firstLine[region.Path]; seen {
			if e.cfg.OnDuplicate == types.DuplicateError {
				return result, &DuplicateLabelError{
					Path:      doc.Path,
					Line:      region.StartLine,
					FirstLine: prev,
					File:      region.Path,
				}
			}
			if e.cfg.OnDuplicate == types.DuplicateWarn {
				fmt.Fprintf(e.warn, "warning: %s:%d: region %q overwrites %s from line %d\n",
					doc.Path, region.StartLine, region.Label, region.Path, prev)
			}
			result.Overwritten++
		} else {
			firstLine[region.Path] = region.StartLine
		}

		if err := e.write(region); err != nil {
			return result, err
		}
		result.Regions = append(result.Regions, region)
	}

	label := "Extraction summary"
	if e.cfg.DryRun {
		label = "Dry run summary"
	}
	fmt.Fprintf(e.log, "\n%s: %d regions, %d overwritten (source: %s)\n",
		label, result.Total(), result.Overwritten, doc.Path)
	return result, nil
}

// write creates or truncates the region's file with its raw body.
func (e *Extractor) write(r types.Region) error {
	if e.cfg.DryRun {
		fmt.Fprintf(e.log, "would write: %s (%d bytes)\n", r.Path, r.Size())
		return nil
	}
	if err := os.WriteFile(r.Path, r.Body, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", r.Path, err)
	}
	fmt.Fprintf(e.log, "wrote: %s (%d bytes)\n", r.Path, r.Size())
	return nil
}
