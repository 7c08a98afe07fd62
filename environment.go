package tizen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Environment is the fully resolved parameter set of a project.
// Named fields are decoded from Values; Values keeps provenance in key order.
type Environment struct {
	BasePath       string   `toml:"-"`
	StudioPath     string   `toml:"studio_path"`
	TizenBin       string   `toml:"tizen_bin"`
	IsEmulator     bool     `toml:"is_emulator"`
	APIVersion     string   `toml:"api_version"`
	AppProfile     string   `toml:"app_profile"`
	RootstrapPath  string   `toml:"rootstrap_path"`
	TizenTriple    string   `toml:"selected_triple"`
	DeviceTriple   string   `toml:"device_triple"`
	EmulatorTriple string   `toml:"emulator_triple"`
	RustTriple     string   `toml:"rust_triple"`
	Toolchain      string   `toml:"toolchain"`
	ToolchainPath  string   `toml:"toolchain_path"`
	RustLinker     string   `toml:"rust_linker"`
	AppID          string   `toml:"app_id"`
	AppVersion     string   `toml:"app_version"`
	AppPackage     string   `toml:"app_package"`
	AppExec        string   `toml:"app_exec"`
	AppLabel       string   `toml:"app_label"`
	AppUIType      string   `toml:"app_ui_type"`
	SyncFiles      []string `toml:"sync_files"`
	PackageName    string   `toml:"-"`

	Values []ResolvedValue `toml:"-"`
}

// NewEnvironment resolves every key of ctx and aggregates the results.
// The first key that cannot be resolved aborts the build with its error.
func NewEnvironment(ctx *Context) (*Environment, error) {
	values, err := ctx.ResolveAll()
	if err != nil {
		return nil, err
	}

	pkgName, ok := ctx.StructuredValue("package.name")
	if !ok {
		return nil, ErrPackageName
	}

	env := &Environment{
		BasePath:    ctx.WorkDir(),
		PackageName: pkgName,
		Values:      values,
	}
	if err := decodeValues(values, env); err != nil {
		return nil, err
	}

	ctx.logger.Debug("environment resolved",
		"package", pkgName,
		"triple", env.TizenTriple,
		"emulator", env.IsEmulator)

	return env, nil
}

// Lookup returns the resolved value exported under envKey.
func (e *Environment) Lookup(envKey string) (ResolvedValue, bool) {
	for _, v := range e.Values {
		if v.EnvKey == envKey {
			return v, true
		}
	}
	return ResolvedValue{}, false
}

// BuildEnv returns the variables a cross build needs on top of the resolved values:
// pkg-config pointed at the rootstrap, the sysroot link flag and cargo's target linker.
func (e *Environment) BuildEnv() map[string]string {
	linkerVar := fmt.Sprintf("CARGO_TARGET_%s_LINKER",
		strings.ReplaceAll(strings.ToUpper(e.RustTriple), "-", "_"))

	return map[string]string{
		"PKG_CONFIG_SYSROOT_DIR": e.RootstrapPath,
		"PKG_CONFIG_LIBDIR":      e.RootstrapPath + "/usr/lib/pkgconfig",
		"PKG_CONFIG_PATH":        "",
		"PKG_CONFIG_ALLOW_CROSS": "1",
		"RUSTFLAGS":              "-C link-args=--sysroot=" + e.RootstrapPath,
		linkerVar:                e.RustLinker,
	}
}

// ProcessEnv returns BuildEnv extended with every resolved value under its env key.
func (e *Environment) ProcessEnv() map[string]string {
	env := e.BuildEnv()
	for _, v := range e.Values {
		env[v.EnvKey] = v.Value
	}
	return env
}

// RustOutputDir returns where cargo places artifacts for the resolved rust triple.
func (e *Environment) RustOutputDir(release bool) string {
	profile := "debug"
	if release {
		profile = "release"
	}
	return filepath.Join(e.BasePath, "target", e.RustTriple, profile)
}

// TizenOutputDir returns the packaging staging directory inside RustOutputDir.
func (e *Environment) TizenOutputDir(release bool) string {
	return filepath.Join(e.RustOutputDir(release), "tizen-tpk")
}

// ArchAlias returns the architecture name the Tizen CLI expects.
func (e *Environment) ArchAlias() string {
	if strings.Contains(e.TizenTriple, "arm") {
		return "arm"
	}
	return "x86"
}
