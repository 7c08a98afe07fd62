package tizen

import "fmt"

// Key identifies one resolvable configuration value.
type Key int

const (
	StudioPath Key = iota
	IsEmulator
	APIVersion
	AppProfile
	RootstrapPath
	SelectedTriple
	DeviceTriple
	EmulatorTriple
	Toolchain
	RustTriple
	ToolchainPath
	RustLinker
	AppID
	AppVersion
	AppPackage
	AppExec
	TizenBin
	AppLabel
	SyncFiles
	AppUIType

	keyCount
)

// targetNamespace prefixes the per-triple structured paths of dynamic keys.
const targetNamespace = "tizen.target"

// computeFunc derives a default from other resolved keys.
type computeFunc func(r *resolver) (string, error)

// descriptor colocates every piece of lookup metadata for a key.
type descriptor struct {
	name string

	// structuredPath is the dotted path searched in Cargo.toml and its overrides.
	structuredPath string

	// targetSuffix marks a dynamic key: its structured path becomes
	// "tizen.target.<selected triple>.<targetSuffix>" at resolution time.
	targetSuffix string

	// envName is used only when the key has no structured path.
	envName string

	// manifestQuery is an XPath expression bound to the "ns" prefix.
	manifestQuery string

	compute computeFunc
}

var registry [keyCount]descriptor

func init() {
	registry = [keyCount]descriptor{
		StudioPath: {name: "studio_path", structuredPath: "tizen.studio_path"},
		IsEmulator: {name: "is_emulator", structuredPath: "tizen.is_emulator"},
		APIVersion: {
			name:           "api_version",
			structuredPath: "tizen.api_version",
			manifestQuery:  "/ns:manifest/@api-version",
		},
		AppProfile: {
			name:           "app_profile",
			structuredPath: "tizen.app_profile",
			manifestQuery:  "/ns:manifest/ns:profile/@name",
		},
		RootstrapPath: {
			name:           "rootstrap_path",
			structuredPath: "tizen.rootstrap_path",
			compute:        computeRootstrapPath,
		},
		SelectedTriple: {
			name:           "selected_triple",
			structuredPath: "tizen.selected_triple",
			compute:        computeSelectedTriple,
		},
		DeviceTriple:   {name: "device_triple", structuredPath: "tizen.device_triple"},
		EmulatorTriple: {name: "emulator_triple", structuredPath: "tizen.emulator_triple"},
		Toolchain: {
			name:           "toolchain",
			structuredPath: "tizen.toolchain",
			compute:        computeToolchain,
		},
		RustTriple: {name: "rust_triple", targetSuffix: "rust_triple"},
		ToolchainPath: {
			name:         "toolchain_path",
			targetSuffix: "toolchain_path",
			compute:      computeToolchainPath,
		},
		RustLinker: {
			name:         "rust_linker",
			targetSuffix: "rust_linker",
			compute:      computeRustLinker,
		},
		AppID: {
			name:          "app_id",
			envName:       "TIZEN_APP_ID",
			manifestQuery: "/ns:manifest/ns:ui-application/@appid",
		},
		AppVersion: {
			name:          "app_version",
			envName:       "TIZEN_APP_VERSION",
			manifestQuery: "/ns:manifest/@version",
		},
		AppPackage: {
			name:          "app_package",
			envName:       "TIZEN_APP_PACKAGE",
			manifestQuery: "/ns:manifest/@package",
		},
		AppExec: {
			name:          "app_exec",
			envName:       "TIZEN_APP_EXEC",
			manifestQuery: "/ns:manifest/ns:ui-application/@exec",
		},
		TizenBin: {
			name:           "tizen_bin",
			structuredPath: "tizen.bin_path",
			compute:        computeTizenBin,
		},
		AppLabel: {
			name:           "app_label",
			structuredPath: "tizen.app_label",
			manifestQuery:  "/ns:manifest/ns:ui-application/ns:label",
		},
		SyncFiles: {name: "sync_files", structuredPath: "tizen.sync_files"},
		AppUIType: {
			name:           "app_ui_type",
			structuredPath: "tizen.app_ui_type",
			manifestQuery:  "/ns:manifest/ns:ui-application/@type",
		},
	}
}

// Keys returns every key in introspection order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// String returns the key's stable snake_case name.
func (k Key) String() string {
	if !k.valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return registry[k].name
}

// IsDynamic reports whether the key's structured path depends on the selected triple.
func (k Key) IsDynamic() bool {
	return k.valid() && registry[k].targetSuffix != ""
}

// ManifestQuery returns the key's manifest expression, if any.
func (k Key) ManifestQuery() (string, bool) {
	if !k.valid() || registry[k].manifestQuery == "" {
		return "", false
	}
	return registry[k].manifestQuery, true
}

func (k Key) valid() bool {
	return k >= 0 && k < keyCount
}

func (k Key) descriptor() descriptor {
	if !k.valid() {
		return descriptor{}
	}
	return registry[k]
}

// targetPath builds the structured path of a dynamic key for the given triple.
func targetPath(triple, suffix string) string {
	return targetNamespace + "." + triple + "." + suffix
}
