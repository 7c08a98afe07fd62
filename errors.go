// FILE: lixenwraith/cargo-tizen/errors.go
package tizen

import (
	"errors"
	"strings"
)

var (
	// ErrConstruction is returned when a required project file cannot be loaded.
	// It is fatal: no key can be resolved without the resolution context.
	ErrConstruction = errors.New("cannot build resolution context")

	// ErrUnresolved matches every *ResolutionError through errors.Is.
	ErrUnresolved = errors.New("config value not resolved")

	// ErrInvalidKey is returned for a key with neither a structured path nor an env name.
	ErrInvalidKey = errors.New("invalid config type or name")

	// ErrDependencyCycle is returned when a computed default depends on itself.
	ErrDependencyCycle = errors.New("config dependency cycle")

	// ErrPackageName is returned when Cargo.toml does not declare package.name.
	ErrPackageName = errors.New("can't get package.name from Cargo.toml")

	// ErrUnknownFormat is returned for an unsupported document or dump format.
	ErrUnknownFormat = errors.New("unknown document format")
)

// ResolutionError reports a key that no source could supply.
// Reasons holds one line per source that had an applicable lookup identifier.
type ResolutionError struct {
	Key     Key
	EnvKey  string
	Reasons []string
}

func (e *ResolutionError) Error() string {
	return strings.Join(e.Reasons, "\n")
}

// Is makes errors.Is(err, ErrUnresolved) hold for every resolution failure.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnresolved
}
