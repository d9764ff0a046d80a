//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the unitconv project using Mage.
//
// Usage:
//
//	mage build          Compile unitconv binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests with the race detector
//	mage test:property  Run the property-based conversion laws
//	mage test:cover     Write coverage.out and print a summary
//	mage lint           Run golangci-lint
//	mage vet            Run go vet
//	mage clean          Remove build artifacts
//	mage install        Install unitconv to GOPATH/bin
//	mage export         Export the conversion table in every format to bin/export
//	mage stats          Print Go LOC and conversion table size
package main
