//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	propertyTag  = "property"
	coverProfile = "coverage.out"
)

// Test groups test targets (all, unit, property, cover).
type Test mg.Namespace

// All runs every test, including the property-based laws.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "-tags", propertyTag, "./...")
}

// Unit runs the unit tests with the race detector.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Property runs only the property-based conversion laws.
func (Test) Property() error {
	return sh.RunV(binGo, "test", "-v", "-tags", propertyTag, "-run", "Properties", "./...")
}

// Cover writes a coverage profile and prints the per-function summary.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile", coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func", coverProfile)
}
