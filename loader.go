// FILE: lixenwraith/cargo-tizen/loader.go
package tizen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is a parsed structured configuration file that can answer dotted-path lookups.
type Document interface {
	// Lookup returns the stringified value at a dotted path.
	// The second return value is false if the path is absent or holds a table.
	Lookup(path string) (string, bool)
}

// mapDocument backs Document with a decoded nested map.
type mapDocument struct {
	name string
	data map[string]any
}

func (d *mapDocument) Lookup(path string) (string, bool) {
	val, found := navigateToPath(d.data, path)
	if !found {
		return "", false
	}
	return stringValue(val)
}

func (d *mapDocument) String() string {
	return d.name
}

// NewMapDocument wraps an already decoded nested map.
func NewMapDocument(name string, data map[string]any) Document {
	if data == nil {
		data = make(map[string]any)
	}
	return &mapDocument{name: name, data: data}
}

// LoadDocument reads and parses a structured file, detecting its format from
// the extension first and from the content second.
func LoadDocument(path string) (Document, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(fileData)
	}

	doc, err := ParseDocument(path, fileData, format)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseDocument decodes data in the given format ("toml", "json" or "yaml").
// name is used in error messages only.
func ParseDocument(name string, data []byte, format string) (Document, error) {
	fileConfig := make(map[string]any)

	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", name, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", name, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w: unable to determine format for '%s'", ErrUnknownFormat, name)
	}

	return NewMapDocument(name, fileConfig), nil
}

// detectFileFormat determines format from file extension.
// Cargo's legacy extensionless ".cargo/config" is TOML.
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case "":
		if filepath.Base(path) == "config" && filepath.Base(filepath.Dir(path)) == cargoConfigDir {
			return "toml"
		}
	}
	return ""
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
