//go:build mage

// Package main contains Mage build targets for termsite developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target when mage runs without arguments.
var Default = Build

const (
	binDir  = "bin"
	binName = "termsite"
	cmdPkg  = "./cmd/termsite"

	// sqlite_fts5 enables the full-text index of the build state.
	buildTags = "sqlite_fts5"
)

// projectDirs lists the working directories a vocabulary project expects.
var projectDirs = []string{
	"begrippenkader",
	"docs",
	"templates",
}

// Init creates the project directory structure.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-tags", buildTags, "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "-tags", buildTags, "./...")
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	docWords, err := countDocWords("docs")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// countGoLines counts non-blank lines in production and test Go files below
// root, skipping the vendored example pack.
func countGoLines(root string) (prod, test int, err error) {
	files, err := doublestar.Glob(os.DirFS(root), "**/*.go", doublestar.WithFilesOnly())
	if err != nil {
		return 0, 0, err
	}
	for _, f := range files {
		if strings.HasPrefix(f, "_") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, f))
		if err != nil {
			return 0, 0, fmt.Errorf("reading %s: %w", f, err)
		}
		n := 0
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				n++
			}
		}
		if strings.HasSuffix(f, "_test.go") {
			test += n
		} else {
			prod += n
		}
	}
	return prod, test, nil
}

// countDocWords counts words in the Markdown and YAML files of the docs
// directory. A missing directory counts zero.
func countDocWords(root string) (int, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return 0, nil
	}
	files, err := doublestar.Glob(os.DirFS(root), "**/*.{md,yaml,yml}", doublestar.WithFilesOnly())
	if err != nil {
		return 0, err
	}
	total := 0
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(root, f))
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", f, err)
		}
		total += len(strings.Fields(string(data)))
	}
	return total, nil
}

// Clean removes the binary and everything the CLI generated.
func Clean() error {
	mg.Deps(Build)
	if err := sh.RunV(filepath.Join(binDir, binName), "clean"); err != nil {
		return err
	}
	return sh.Rm(binDir)
}
