// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/testgen/internal/catalog"
)

func newCatalogCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [source]",
		Short: "List the regions recorded by the latest extraction runs",
		Long: `Catalog reads the SQLite catalog written by extraction runs started with
--catalog and prints the regions of the most recent run of each source
document. Pass a source document to restrict the listing to it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, v, args)
		},
	}
	cmd.Flags().Bool("json", false, "print entries as JSON")
	return cmd
}

func runCatalog(cmd *cobra.Command, v *viper.Viper, args []string) error {
	dbPath := v.GetString("catalog")
	if dbPath == "" {
		return fmt.Errorf("no catalog database: pass --catalog or set catalog in the config file")
	}

	var source string
	if len(args) == 1 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}
		source = abs
	}

	store, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Latest(cmd.Context(), source)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatCatalogOutput(cmd.OutOrStdout(), entries, jsonOutput)
}

func formatCatalogOutput(w io.Writer, entries []catalog.Entry, jsonOutput bool) error {
	if jsonOutput {
		if entries == nil {
			entries = []catalog.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No regions recorded.")
		return nil
	}

	source := ""
	for _, e := range entries {
		if e.Source != source {
			if source != "" {
				fmt.Fprintln(w)
			}
			source = e.Source
			fmt.Fprintf(w, "%s (run %d, %s)\n", e.Source, e.RunID, e.RecordedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "%-11s  %-8s  %-30s  %s\n", "Lines", "Bytes", "Label", "File")
			fmt.Fprintln(w, strings.Repeat("-", 80))
		}
		label := e.Label
		if len(label) > 30 {
			label = label[:27] + "..."
		}
		fmt.Fprintf(w, "%-11s  %-8d  %-30s  %s\n",
			fmt.Sprintf("%d-%d", e.StartLine, e.EndLine), e.Bytes, label, e.File)
	}

	fmt.Fprintf(w, "\n%d regions\n", len(entries))
	return nil
}
