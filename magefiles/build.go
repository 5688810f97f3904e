//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Downloads the modules and builds the binary into bin/.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("mod", "download"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/glpong", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Checks both shaders with glslangValidator.
func (Build) Shaders() error {
	for _, shader := range []string{"assets/shaders/vertex.glsl", "assets/shaders/fragment.glsl"} {
		stage := "vert"
		if shader == "assets/shaders/fragment.glsl" {
			stage = "frag"
		}
		if _, err := executeCmd("glslangValidator", withArgs("-S", stage, shader), withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Runs the unit tests of every package.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
