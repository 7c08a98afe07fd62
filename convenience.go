// File: lixenwraith/cargo-tizen/convenience.go
package tizen

import "fmt"

// Load builds a resolution context for workDir and resolves the full environment
// with a single call. The process environment and $HOME are used.
func Load(workDir string, args Args) (*Environment, error) {
	ctx, err := NewBuilder().
		WithWorkDir(workDir).
		WithArgs(args).
		Build()
	if err != nil {
		return nil, err
	}
	return NewEnvironment(ctx)
}

// MustLoad is like Load but panics on error
func MustLoad(workDir string, args Args) *Environment {
	env, err := Load(workDir, args)
	if err != nil {
		panic(fmt.Sprintf("tizen environment initialization failed: %v", err))
	}
	return env
}
