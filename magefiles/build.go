//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/mesh-intelligence/unitconv/internal/export"
)

const (
	binGo      = "go"
	binaryName = "unitconv"
	binaryDir  = "bin"
	cmdDir     = "./cmd/unitconv"
)

// Build compiles the unitconv binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.Remove(coverProfile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Export builds the binary and writes the conversion table in every
// export format to bin/export.
func Export() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	out := filepath.Join(binaryDir, "export")
	for _, format := range export.Formats {
		if err := sh.RunV(bin, "export", "--format", format, "--data-dir", out); err != nil {
			return err
		}
	}
	return nil
}
