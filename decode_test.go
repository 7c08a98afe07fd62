// FILE: lixenwraith/cargo-tizen/decode_test.go
package tizen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValues(t *testing.T) {
	values := []ResolvedValue{
		{Key: IsEmulator, Value: "true"},
		{Key: SyncFiles, Value: "res,shared,tizen-manifest.xml"},
		{Key: SelectedTriple, Value: deviceTriple},
		{Key: AppID, Value: "org.example"},
	}

	t.Run("Environment", func(t *testing.T) {
		e := Environment{BasePath: "/work", PackageName: "hello"}
		require.NoError(t, decodeValues(values, &e))

		assert.True(t, e.IsEmulator)
		assert.Equal(t, []string{"res", "shared", "tizen-manifest.xml"}, e.SyncFiles)
		assert.Equal(t, deviceTriple, e.TizenTriple)
		assert.Equal(t, "org.example", e.AppID)
		assert.Equal(t, "/work", e.BasePath, "untagged fields are left alone")
		assert.Equal(t, "hello", e.PackageName)
	})

	t.Run("FlagValues", func(t *testing.T) {
		for value, want := range map[string]bool{"1": true, "true": true, "false": false, "0": false, "on": false} {
			var target struct {
				IsEmulator bool `toml:"is_emulator"`
			}
			require.NoError(t, decodeValues([]ResolvedValue{{Key: IsEmulator, Value: value}}, &target))
			assert.Equal(t, want, target.IsEmulator, "value %q", value)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		var e Environment
		require.NoError(t, decodeValues([]ResolvedValue{{Key: SyncFiles, Value: ""}}, &e))
		assert.Empty(t, e.SyncFiles)
	})

	t.Run("NonPointerTarget", func(t *testing.T) {
		assert.Error(t, decodeValues(values, Environment{}))
	})
}
