package tizen

import (
	"errors"
	"fmt"
	"strings"
)

// resolver carries the keys currently being resolved so that a computed default
// that depends on itself fails with ErrDependencyCycle instead of recursing forever.
type resolver struct {
	ctx   *Context
	stack []Key
}

// Resolve returns the value of k from the first source that defines it, in order:
// environment, manifest, structured files, command-line args, defaults.
// Nothing is cached: every call scans all sources again.
func (c *Context) Resolve(k Key) (ResolvedValue, error) {
	r := &resolver{ctx: c}
	return r.resolve(k)
}

// value resolves a prerequisite key from inside a computed default.
func (r *resolver) value(k Key) (string, error) {
	rv, err := r.resolve(k)
	if err != nil {
		return "", err
	}
	return rv.Value, nil
}

func (r *resolver) resolve(k Key) (ResolvedValue, error) {
	if !k.valid() {
		return ResolvedValue{Key: k}, fmt.Errorf("%w: %s", ErrInvalidKey, k)
	}

	for _, active := range r.stack {
		if active == k {
			return ResolvedValue{Key: k}, fmt.Errorf("%w: %s depends on itself (%s)",
				ErrDependencyCycle, k, r.chain(k))
		}
	}
	r.stack = append(r.stack, k)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	d := k.descriptor()

	structuredKey := d.structuredPath
	if d.targetSuffix != "" {
		triple, err := r.value(SelectedTriple)
		if err != nil {
			return ResolvedValue{Key: k}, fmt.Errorf("cannot build lookup path of %s: %w", k, err)
		}
		structuredKey = targetPath(triple, d.targetSuffix)
	}

	var envKey string
	switch {
	case structuredKey != "":
		envKey = EnvName(structuredKey)
	case d.envName != "":
		envKey = EnvName(d.envName)
	default:
		return ResolvedValue{Key: k}, fmt.Errorf("%w: %s", ErrInvalidKey, k)
	}

	result := ResolvedValue{
		Key:           k,
		EnvKey:        envKey,
		StructuredKey: optional(structuredKey),
		ManifestKey:   optional(d.manifestQuery),
	}

	if v, ok := r.ctx.lookupEnv(envKey); ok {
		return r.found(result, SourceEnv, v), nil
	}

	if d.manifestQuery != "" {
		if v, ok := r.ctx.manifest.Query(d.manifestQuery); ok {
			return r.found(result, SourceManifest, v), nil
		}
	}

	if structuredKey != "" {
		if v, ok := r.ctx.StructuredValue(structuredKey); ok {
			return r.found(result, SourceStructured, v), nil
		}
	}

	if v, ok := r.ctx.args.lookup(k); ok {
		return r.found(result, SourceArg, v), nil
	}

	if structuredKey != "" {
		if v, ok := r.ctx.defaults.Lookup(structuredKey); ok {
			return r.found(result, SourceDefault, v), nil
		}
	}

	var computeErr error
	if d.compute != nil {
		v, err := d.compute(r)
		if err == nil {
			return r.found(result, SourceDefault, v), nil
		}
		if errors.Is(err, ErrDependencyCycle) {
			return result, err
		}
		computeErr = err
	}

	return result, r.notFound(k, result, computeErr)
}

func (r *resolver) found(rv ResolvedValue, source Source, value string) ResolvedValue {
	rv.Source = source
	rv.Value = value
	r.ctx.logger.Debug("resolved config",
		"key", rv.Key.String(),
		"source", string(source),
		"env_key", rv.EnvKey,
		"depth", len(r.stack))
	return rv
}

// notFound lists every source that had something to look up, ending with the env variable.
func (r *resolver) notFound(k Key, rv ResolvedValue, computeErr error) error {
	var reasons []string

	if rv.ManifestKey != nil {
		reasons = append(reasons, fmt.Sprintf("Config '%s' not found in manifest xml", *rv.ManifestKey))
	}
	if rv.StructuredKey != nil {
		reasons = append(reasons, fmt.Sprintf("Config '%s' not found in cargo config", *rv.StructuredKey))
	}
	if computeErr != nil {
		reasons = append(reasons, fmt.Sprintf("Config '%s' could not be computed: %s", k, computeReason(computeErr)))
	}
	reasons = append(reasons, fmt.Sprintf("Config '%s' not found in env", rv.EnvKey))

	r.ctx.logger.Debug("config not resolved", "key", k.String(), "env_key", rv.EnvKey)

	return &ResolutionError{Key: k, EnvKey: rv.EnvKey, Reasons: reasons}
}

// computeReason keeps a failed prerequisite to one line instead of nesting its full report.
func computeReason(err error) string {
	var resErr *ResolutionError
	if errors.As(err, &resErr) {
		return fmt.Sprintf("%s is not set (env %s)", resErr.Key, resErr.EnvKey)
	}
	return err.Error()
}

// chain renders the resolution stack from the first occurrence of k, e.g. "a -> b -> a".
func (r *resolver) chain(k Key) string {
	var names []string
	started := false
	for _, active := range r.stack {
		if active == k {
			started = true
		}
		if started {
			names = append(names, active.String())
		}
	}
	names = append(names, k.String())
	return strings.Join(names, " -> ")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
