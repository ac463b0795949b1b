//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
// var Default = Build

// Build builds all binaries
func Build() error {
	fmt.Println("Building...")
	for _, cmd := range []string{"flush-index", "quick-flush", "index-stats", "ensure-index"} {
		if err := sh.Run("go", "build", "-o", "bin/"+cmd, "./cmd/"+cmd); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning...")
	return sh.Rm("bin")
}

// Test runs the test suite
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint
func Lint() error {
	fmt.Println("Running linter...")
	return sh.RunV("golangci-lint", "run")
}

// Format formats the code
func Format() error {
	fmt.Println("Formatting code...")
	return sh.RunV("go", "fmt", "./...")
}

// Mod tidies up the go.mod file
func Mod() error {
	fmt.Println("Tidying modules...")
	mg.Deps(Format)
	return sh.RunV("go", "mod", "tidy")
}

// Install installs the binaries to GOPATH/bin
func Install() error {
	fmt.Println("Installing...")
	return sh.RunV("go", "install", "./cmd/...")
}

// Check runs all pre-commit checks
func Check() error {
	fmt.Println("Running all checks...")
	mg.Deps(Format, Lint, Test)
	return nil
}

// =============================================================================
// Pinecone Maintenance Targets
// =============================================================================

type Pinecone mg.Namespace

// Flush flushes the entire Pinecone index
func (Pinecone) Flush() error {
	fmt.Println("Flushing Pinecone index...")
	return sh.RunV("go", "run", "./cmd/flush-index")
}

// FlushNamespace flushes a single namespace of the Pinecone index
func (Pinecone) FlushNamespace(namespace string) error {
	if namespace == "" {
		return fmt.Errorf("namespace parameter is required. Usage: mage pinecone.flushnamespace \"team-x\"")
	}
	fmt.Printf("Flushing Pinecone namespace %s...\n", namespace)
	return sh.RunV("go", "run", "./cmd/flush-index", namespace)
}

// Stats prints vector counts for the Pinecone index
func (Pinecone) Stats() error {
	return sh.RunV("go", "run", "./cmd/index-stats")
}

// Ensure creates the Pinecone index if it does not exist
func (Pinecone) Ensure() error {
	fmt.Println("Ensuring Pinecone index exists...")
	return sh.RunV("go", "run", "./cmd/ensure-index")
}

func init() {
	// Ensure bin directory exists for builds
	os.MkdirAll("bin", 0755)
}
