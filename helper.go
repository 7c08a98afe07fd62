// File: lixenwraith/cargo-tizen/helper.go
package tizen

import (
	"path/filepath"
	"strings"
)

// navigateToPath traverses nested tables along a dotted path.
// The second return value is false unless every segment exists.
func navigateToPath(nested map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := asTable(current)
		if !ok {
			return nil, false
		}

		value, exists := currentMap[segment]
		if !exists {
			return nil, false
		}
		current = value
	}

	return current, true
}

// asTable accepts the table shapes produced by the TOML, JSON and YAML decoders.
func asTable(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		converted := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			converted[ks] = val
		}
		return converted, true
	}
	return nil, false
}

// setNestedValue sets a value in a nested map using a dot-notation path.
// It creates intermediate maps if they don't exist.
// If a segment exists but is not a map, it will be overwritten by a new map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		next, exists := current[segment]
		if nextMap, isMap := next.(map[string]any); exists && isMap {
			current = nextMap
			continue
		}

		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	current[segments[len(segments)-1]] = value
}

// pushPath appends elem to base the way a path buffer does:
// an absolute elem replaces base instead of being nested under it.
func pushPath(base string, elems ...string) string {
	out := base
	for _, elem := range elems {
		if filepath.IsAbs(elem) || out == "" {
			out = elem
			continue
		}
		out = filepath.Join(out, elem)
	}
	return out
}
