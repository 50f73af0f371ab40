//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package with the race detector.
func (Test) All() error {
	// -race needs cgo
	if _, err := executeCmd("go", withArgs("test", "-race", "-count=1", "./..."), withEnv("CGO_ENABLED=1"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet on every package.
func (Test) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the geometry tests only, verbosely.
func (Test) Geometry() error {
	_, err := executeCmd("go", withArgs("test", "-v", "-run", "Hexahedron|Plane", "./math"), withDir("engine"), withStream())
	return err
}
