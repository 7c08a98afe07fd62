// FILE: lixenwraith/cargo-tizen/io_test.go
package tizen

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDump(t *testing.T) {
	e, studio := newTestEnvironment(t, Args{}, nil)

	t.Run("List", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, e.Dump(&buf, FormatList))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, len(e.Values))
		assert.Equal(t, "TIZEN_STUDIO_PATH="+studio+" # cargo file", lines[0])
		assert.Equal(t, "TIZEN_IS_EMULATOR=false # default", lines[1])
		assert.Contains(t, lines, "TIZEN_APP_ID=org.example.hello.app # manifest")
	})

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, e.Dump(&buf, FormatTOML))

		var decoded map[string]any
		_, err := toml.Decode(buf.String(), &decoded)
		require.NoError(t, err)

		doc := NewMapDocument("dump", decoded)
		v, _ := doc.Lookup("tizen.studio_path")
		assert.Equal(t, studio, v)
		v, _ = doc.Lookup("tizen.app_id")
		assert.Equal(t, "org.example.hello.app", v)
		v, _ = doc.Lookup("tizen.target.armv7l-tizen-linux-gnueabi.rust_triple")
		assert.Equal(t, "armv7-unknown-linux-gnueabi", v)
		v, _ = doc.Lookup("tizen.bin_path")
		assert.Equal(t, e.TizenBin, v)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, e.Dump(&buf, FormatYAML))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		v, _ := NewMapDocument("dump", decoded).Lookup("tizen.app_profile")
		assert.Equal(t, "wearable", v)
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, e.Dump(&buf, FormatJSON))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		v, _ := NewMapDocument("dump", decoded).Lookup("tizen.sync_files")
		assert.Equal(t, "res,lib/arm", v)
	})

	t.Run("Env", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, e.Dump(&buf, FormatEnv))

		out := buf.String()
		assert.Contains(t, out, "export PKG_CONFIG_ALLOW_CROSS='1'\n")
		assert.Contains(t, out, "export PKG_CONFIG_PATH=''\n")
		assert.Contains(t, out, "export TIZEN_APP_ID='org.example.hello.app'\n")
		assert.Contains(t, out, "export CARGO_TARGET_ARMV7_UNKNOWN_LINUX_GNUEABI_LINKER=")

		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, len(e.ProcessEnv()))
		assert.True(t, strings.HasPrefix(lines[0], "export CARGO_TARGET_"), "sorted output")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, e.Dump(&buf, "xml"), ErrUnknownFormat)
	})
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, shellQuote("plain"))
	assert.Equal(t, `''`, shellQuote(""))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestSave(t *testing.T) {
	e, _ := newTestEnvironment(t, Args{}, nil)
	dir := t.TempDir()

	t.Run("FormatFromExtension", func(t *testing.T) {
		path := filepath.Join(dir, "out", "resolved.toml")
		require.NoError(t, e.Save(path, ""))

		doc, err := LoadDocument(path)
		require.NoError(t, err)
		v, _ := doc.Lookup("tizen.app_ui_type")
		assert.Equal(t, "capp", v)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("ExplicitFormat", func(t *testing.T) {
		path := filepath.Join(dir, "resolved.env")
		require.NoError(t, e.Save(path, FormatEnv))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "export TIZEN_APP_EXEC='hello'")
	})

	t.Run("NoTempFilesLeft", func(t *testing.T) {
		matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}
