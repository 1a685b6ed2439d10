//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"
)

// Generate splits the test document named by $TESTGEN_DOC into .lox files
// using the freshly built binary. Extra flags can be passed in $TESTGEN_FLAGS.
func Generate() error {
	ensureBuilt()

	doc := os.Getenv("TESTGEN_DOC")
	if doc == "" {
		return fmt.Errorf("set TESTGEN_DOC to the test document to split")
	}

	args := []string{"--verbose"}
	if flags := os.Getenv("TESTGEN_FLAGS"); flags != "" {
		args = append(args, strings.Fields(flags)...)
	}
	args = append(args, doc)

	return sh.RunV(filepath.Join(binDir, binName), args...)
}
