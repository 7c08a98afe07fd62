// File: lixenwraith/cargo-tizen/type.go
package tizen

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// stringValue converts a decoded document value to the string form used by the resolver.
// Scalars stringify, lists join their stringifiable elements with commas,
// and anything else (tables, datetimes, nil) is not a value.
func stringValue(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case json.Number:
		return v.String(), true
	case []any:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			if s, ok := stringValue(elem); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	case []string:
		return strings.Join(v, ","), true
	case map[string]any, map[any]any:
		return "", false
	}

	// Use reflection for the remaining numeric kinds
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s, ok := stringValue(rv.Index(i).Interface()); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	}

	return "", false
}
