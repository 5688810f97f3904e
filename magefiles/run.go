//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs Pong with the default config.
func (Run) Pong() error {
	return runGame("pong")
}

// Runs the cubes scene with the default config.
func (Run) Cubes() error {
	return runGame("cubes")
}

func runGame(game string) error {
	fmt.Printf("Run %s...\n", game)
	_, err := executeCmd("go", withArgs("run", ".", "-config", "assets/config.toml", "-game", game), withStream())
	return err
}
