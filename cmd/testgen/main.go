// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the testgen CLI, which splits a Lox
// test-suite document into one .lox file per "#test(Name) ... #end" region.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/testgen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const usageLine = "Usage: testgen <path/to/tests>"

// Exit statuses. Usage errors are kept distinct from run failures.
const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

// errUsage marks a wrong argument count or an unparsable flag.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stdout, usageLine)
		return exitUsage
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}
}

// newRootCmd builds the command tree. Each invocation gets its own viper
// instance so flags, environment and config file never leak between runs.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "testgen <path/to/tests>",
		Short: "Split a Lox test document into one .lox file per test",
		Long: `testgen reads a test document and writes every region that starts on a
line containing "#test(Name)" and ends on the next line containing "#end"
to its own file. The file is named after the label, lower-cased with spaces
replaced by underscores, and placed next to the document:

    #test(Simple Case)
    print 1;
    #end

becomes simple_case.lox containing "print 1;". Lines outside regions are
ignored. A region without a closing "#end" or a "#test" line without a
"(label)" aborts the run with the offending line number.`,
		Args:          exactlyOneDocument,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, v, args[0], stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: ./testgen.yaml or ~/.config/testgen/testgen.yaml)")
	pf.String("catalog", "", "SQLite catalog recording every extraction run")
	pf.BoolP("verbose", "v", false, "report each written file on stderr")

	f := root.Flags()
	f.String("start-token", types.DefaultStartToken, "token that opens a region")
	f.String("end-token", types.DefaultEndToken, "token that closes a region")
	f.String("extension", types.DefaultExtension, "extension appended to each output file")
	f.String("output-dir", "", "directory for output files (default: the document's directory)")
	f.String("on-duplicate", string(types.DuplicateWarn), "duplicate label policy: warn, overwrite, or error")
	f.Bool("dry-run", false, "report regions without writing files")
	f.String("manifest", "", "write a YAML manifest of extracted regions to this file")

	bindFlags(v, root, map[string]string{
		"catalog":      "catalog",
		"verbose":      "verbose",
		"start_token":  "start-token",
		"end_token":    "end-token",
		"extension":    "extension",
		"output_dir":   "output-dir",
		"on_duplicate": "on-duplicate",
		"dry_run":      "dry-run",
		"manifest":     "manifest",
	})

	root.AddCommand(newVersionCmd(), newCatalogCmd(v))
	return root
}

func exactlyOneDocument(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return nil
}

// bindFlags binds config keys to flags of cmd, local or persistent.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}
		// BindPFlag only fails on a nil flag.
		_ = v.BindPFlag(key, flag)
	}
}

// initConfig loads the optional config file and TESTGEN_* environment
// variables. Precedence: flag, environment, config file, default.
func initConfig(cmd *cobra.Command, v *viper.Viper, stderr io.Writer) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("testgen")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "testgen"))
		}
	}

	v.SetEnvPrefix("TESTGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}
	if v.GetBool("verbose") {
		fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	}
	return nil
}
