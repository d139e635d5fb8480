//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const sampleAssignment = "testdata/sample-assignment.txt"

// Demo builds the binary and runs analyze and draft on the sample assignment.
func Demo() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)

	fmt.Println("[analyze]", sampleAssignment)
	if err := sh.RunV(bin, "analyze", "--file", sampleAssignment, "--format", "yaml"); err != nil {
		return err
	}
	fmt.Println("[draft]", sampleAssignment)
	return sh.RunV(bin, "draft", "--file", sampleAssignment)
}

// Serve builds the binary and starts the HTTP server with debug logging.
func Serve() error {
	mg.Deps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve", "--log-level", "debug")
}
