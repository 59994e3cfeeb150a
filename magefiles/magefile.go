//go:build mage

/*
Copyright 2021 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uwu-tools/magex/shx"
)

const (
	binaryName = "synthetics"
	binaryPkg  = "./cmd/synthetics"
	outputDir  = "output"
)

// Default target to run when none is specified.
var Default = Verify

// Verify runs the unit tests and builds the binary.
func Verify() error {
	if err := Test(); err != nil {
		return err
	}
	return Build()
}

// Test runs the unit tests with the race detector.
func Test() error {
	if err := shx.RunV("go", "test", "-race", "-cover", "./..."); err != nil {
		return fmt.Errorf("running go tests: %w", err)
	}
	return nil
}

// Build compiles the synthetics binary into the output directory.
func Build() error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	ldflags, err := versionFlags()
	if err != nil {
		return err
	}

	if err := shx.RunV(
		"go", "build", "-trimpath", "-ldflags", ldflags,
		"-o", filepath.Join(outputDir, binaryName), binaryPkg,
	); err != nil {
		return fmt.Errorf("building %s: %w", binaryName, err)
	}
	return nil
}

// Generate regenerates the counterfeiter fakes.
func Generate() error {
	if err := shx.RunV("go", "generate", "./..."); err != nil {
		return fmt.Errorf("generating fakes: %w", err)
	}
	return nil
}

// Lint runs golangci-lint, which must be available on the PATH.
func Lint() error {
	if err := shx.RunV("golangci-lint", "run"); err != nil {
		return fmt.Errorf("running golangci-lint linters: %w", err)
	}
	return nil
}

// versionFlags returns the ldflags setting the version package variables
// from the git checkout.
func versionFlags() (string, error) {
	version, err := shx.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		return "", fmt.Errorf("getting git version: %w", err)
	}
	commit, err := shx.Output("git", "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("getting git commit: %w", err)
	}

	const pkg = "sigs.k8s.io/synthetic-checks/version"
	return fmt.Sprintf(
		"-s -w -X %[1]s.gitVersion=%[2]s -X %[1]s.gitCommit=%[3]s",
		pkg, version, commit,
	), nil
}
