// File: lixenwraith/cargo-tizen/builder.go
package tizen

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Builder provides a fluent interface for building a resolution context
type Builder struct {
	workDir   string
	homeDir   *string
	args      Args
	lookupEnv EnvLookupFunc
	defaults  Document
	logger    *slog.Logger
	err       error
}

// NewBuilder creates a builder rooted at the current working directory
func NewBuilder() *Builder {
	b := &Builder{
		lookupEnv: defaultEnvLookup(),
	}
	wd, err := os.Getwd()
	if err != nil {
		b.err = fmt.Errorf("%w: failed to get working directory: %w", ErrConstruction, err)
	}
	b.workDir = wd
	return b
}

// WithWorkDir sets the project directory holding Cargo.toml and tizen-manifest.xml
func (b *Builder) WithWorkDir(dir string) *Builder {
	abs, err := filepath.Abs(dir)
	if err != nil {
		b.err = fmt.Errorf("%w: invalid project directory '%s': %w", ErrConstruction, dir, err)
		return b
	}
	b.workDir = abs
	b.err = nil
	return b
}

// WithHomeDir sets the directory where the override walk stops.
// Without it $HOME is read through the env lookup.
func (b *Builder) WithHomeDir(dir string) *Builder {
	b.homeDir = &dir
	return b
}

// WithArgs sets the command-line overrides
func (b *Builder) WithArgs(args Args) *Builder {
	b.args = args
	return b
}

// WithEnvLookup replaces the process environment as the env source
func (b *Builder) WithEnvLookup(fn EnvLookupFunc) *Builder {
	if fn != nil {
		b.lookupEnv = fn
	}
	return b
}

// WithDefaults replaces the bundled default document
func (b *Builder) WithDefaults(doc Document) *Builder {
	b.defaults = doc
	return b
}

// WithLogger sets the logger receiving resolution trace records
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build loads Cargo.toml, the override chain and the manifest.
// A missing or unparsable Cargo.toml or manifest is an ErrConstruction.
func (b *Builder) Build() (*Context, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	homeDir := userHomeDir(b.lookupEnv)
	if b.homeDir != nil {
		homeDir = *b.homeDir
	}

	cargoPath := filepath.Join(b.workDir, CargoFileName)
	primary, err := LoadDocument(cargoPath)
	if err != nil {
		return nil, constructionError(cargoPath, err)
	}

	manifestPath := filepath.Join(b.workDir, ManifestFileName)
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, constructionError(manifestPath, err)
	}

	defaults := b.defaults
	if defaults == nil {
		defaults = DefaultDocument()
	}

	ctx := &Context{
		workDir:   b.workDir,
		primary:   primary,
		overrides: loadOverrides(b.workDir, homeDir, logger),
		manifest:  manifest,
		defaults:  defaults,
		args:      b.args,
		lookupEnv: b.lookupEnv,
		logger:    logger,
	}

	logger.Debug("resolution context ready",
		"work_dir", ctx.workDir,
		"home_dir", homeDir,
		"overrides", len(ctx.overrides))

	return ctx, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Context {
	ctx, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("resolution context build failed: %v", err))
	}
	return ctx
}

func constructionError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: file does not exist %s", ErrConstruction, path)
	}
	return fmt.Errorf("%w: %w", ErrConstruction, err)
}
