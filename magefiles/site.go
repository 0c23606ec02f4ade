//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

func termsite(args ...string) error {
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Generate validates the vocabulary and writes the Markdown pages into docs/.
func Generate() error {
	mg.Deps(Build)
	return termsite("generate")
}

// Validate checks the vocabulary and prints the report.
func Validate() error {
	mg.Deps(Build)
	return termsite("validate")
}

// Site generates the pages into _build/ and runs jekyll build.
func Site() error {
	mg.Deps(Build)
	return termsite("build")
}

// Serve runs the Jekyll development server and regenerates on changes.
func Serve() error {
	mg.Deps(Build)
	return termsite("serve")
}

// Setup installs the Ruby gems of the Jekyll site.
func Setup() error {
	return sh.RunV("bundle", "install")
}
