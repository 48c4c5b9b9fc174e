//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "panlexicon"
	mainPkg = "./cmd/panlexicon"
)

// Default target to run when none is specified.
var Default = Build

// Build compiles the panlexicon binary.
func Build() error {
	return sh.RunV("go", "build", "-o", binary, mainPkg)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs panlexicon into GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", mainPkg)
}

// Clean removes build artifacts and the default log file.
func Clean() error {
	for _, path := range []string{binary, "debug.txt"} {
		if err := sh.Rm(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
