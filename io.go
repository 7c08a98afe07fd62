// File: lixenwraith/cargo-tizen/io.go
package tizen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Dump and Save
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatEnv  = "env"  // export KEY='value' lines, ProcessEnv content
	FormatList = "list" // KEY=value # source lines, key order
)

// Formats lists every output format.
func Formats() []string {
	return []string{FormatList, FormatTOML, FormatYAML, FormatJSON, FormatEnv}
}

// Dump writes the resolved values to w in the given format.
// Structured formats nest each value under its structured path; keys known only
// by env name are placed under "tizen.<name>".
func (e *Environment) Dump(w io.Writer, format string) error {
	data, err := e.marshal(format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Save writes the resolved values to a file atomically.
// An empty format is detected from the file extension.
func (e *Environment) Save(path, format string) error {
	if format == "" {
		format = detectFileFormat(path)
	}
	data, err := e.marshal(format)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

func (e *Environment) marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatList, "":
		return e.listBytes(), nil
	case FormatEnv:
		return e.envBytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(e.nested()); err != nil {
			return nil, fmt.Errorf("failed to marshal resolved values to TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(e.nested())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal resolved values to YAML: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(e.nested(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal resolved values to JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (e *Environment) nested() map[string]any {
	nested := make(map[string]any)
	for _, v := range e.Values {
		path := "tizen." + v.Key.String()
		if v.StructuredKey != nil {
			path = *v.StructuredKey
		}
		setNestedValue(nested, path, v.Value)
	}
	return nested
}

func (e *Environment) listBytes() []byte {
	var b bytes.Buffer
	for _, v := range e.Values {
		fmt.Fprintf(&b, "%s=%s # %s\n", v.EnvKey, v.Value, v.Source)
	}
	return b.Bytes()
}

func (e *Environment) envBytes() []byte {
	env := e.ProcessEnv()
	var b bytes.Buffer
	for _, k := range slices.Sorted(maps.Keys(env)) {
		fmt.Fprintf(&b, "export %s=%s\n", k, shellQuote(env[k]))
	}
	return b.Bytes()
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
