// FILE: lixenwraith/cargo-tizen/decode.go
package tizen

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// envTagName is the struct tag matching Environment fields to key names.
const envTagName = "toml"

// decodeValues is the single function turning resolved key values into a target
// structure. Fields are matched on the key names ("studio_path", "is_emulator", ...).
func decodeValues(values []ResolvedValue, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	flat := make(map[string]any, len(values))
	for _, v := range values {
		flat[v.Key.String()] = v.Value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          envTagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(flat); err != nil {
		return fmt.Errorf("decode of resolved values failed: %w", err)
	}
	return nil
}

// decodeHook returns the composite decode hook for resolved string values
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToFlagHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToFlagHookFunc reads a bool the way the tooling does: only "1" and "true" are set.
func stringToFlagHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return isTrue(data.(string)), nil
	}
}
