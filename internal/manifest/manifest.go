// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records which files an extraction run produced and
// where in the source document each one came from.
package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/testgen/pkg/types"
)

// Manifest is the on-disk YAML summary of one extraction run.
type Manifest struct {
	Source      string    `yaml:"source"`
	GeneratedAt time.Time `yaml:"generated_at"`
	DryRun      bool      `yaml:"dry_run,omitempty"`
	Entries     []Entry   `yaml:"entries"`
}

// Entry describes one extracted region.
type Entry struct {
	Label     string `yaml:"label"`
	File      string `yaml:"file"`
	StartLine int    `yaml:"start_line"`
	EndLine   int    `yaml:"end_line"`
	Bytes     int    `yaml:"bytes"`
	SHA256    string `yaml:"sha256"`
}

// New builds a Manifest from the regions of a run.
func New(source string, regions []types.Region, dryRun bool) Manifest {
	m := Manifest{
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		DryRun:      dryRun,
		Entries:     make([]Entry, 0, len(regions)),
	}
	for _, r := range regions {
		m.Entries = append(m.Entries, Entry{
			Label:     r.Label,
			File:      r.Path,
			StartLine: r.StartLine,
			EndLine:   r.EndLine,
			Bytes:     r.Size(),
			SHA256:    r.Digest(),
		})
	}
	return m
}

// Write saves the manifest as YAML at path.
func Write(path string, m Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Read loads a manifest previously written by Write.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
