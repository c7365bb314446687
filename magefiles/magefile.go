//go:build mage

// Package main contains Mage build targets for checklist-gen developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "checklist-gen"
	cmdPkg  = "./cmd/checklist-gen"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet over the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Sample builds the binary and renders the bundled example checklist.
func Sample() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "generate",
		"--input", "testdata/packing.xml",
		"--output", filepath.Join(binDir, "packing.pdf"))
}
