// File: lixenwraith/cargo-tizen/config.go
package tizen

import (
	"log/slog"
	"strings"
)

// Context owns every parsed input of one resolution pass. It is built once per
// process by a Builder and never mutated afterwards, so it is safe to share.
type Context struct {
	workDir string

	primary   Document   // Cargo.toml
	overrides []Document // .cargo/config.toml files, nearest first
	manifest  *Manifest
	defaults  Document

	args      Args
	lookupEnv EnvLookupFunc
	logger    *slog.Logger
}

// WorkDir returns the project directory the context was built from.
func (c *Context) WorkDir() string {
	return c.workDir
}

// Manifest returns the parsed application manifest.
func (c *Context) Manifest() *Manifest {
	return c.manifest
}

// OverrideCount returns the number of override files that were loaded.
func (c *Context) OverrideCount() int {
	return len(c.overrides)
}

// StructuredValue looks up a dotted path in Cargo.toml, then in each override file.
// Paths under "package." are project metadata and never read from overrides.
func (c *Context) StructuredValue(path string) (string, bool) {
	if v, ok := c.primary.Lookup(path); ok {
		return v, true
	}

	if strings.HasPrefix(path, "package.") {
		return "", false
	}

	for _, doc := range c.overrides {
		if v, ok := doc.Lookup(path); ok {
			return v, true
		}
	}
	return "", false
}

// ResolveAll resolves every key in introspection order, stopping at the first failure.
func (c *Context) ResolveAll() ([]ResolvedValue, error) {
	values := make([]ResolvedValue, 0, keyCount)
	for _, k := range Keys() {
		rv, err := c.Resolve(k)
		if err != nil {
			return nil, err
		}
		values = append(values, rv)
	}
	return values, nil
}
