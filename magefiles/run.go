//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

const exampleScene = "engine/scene/testdata/scene.toml"

type Run mg.Namespace

// Evaluates the example scene once.
func (Run) Example() error {
	fmt.Println("Evaluating example scene...")
	// Two queries of the example fail on purpose, the output is what matters.
	if _, err := executeCmd("go", withArgs("run", ".", "evaluate", exampleScene), withStream()); err != nil {
		fmt.Println(err)
	}
	return nil
}

// Watches the example scene until interrupted.
func (Run) Watch() error {
	_, err := executeCmd("go", withArgs("run", ".", "watch", exampleScene), withStream())
	return err
}
