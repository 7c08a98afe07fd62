package tizen

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed res/default-cargo.toml
var defaultCargoFile []byte

var (
	errNoToolsDir  = errors.New("studio tools path does not exist")
	errNoToolchain = errors.New("no toolchain found")
)

// DefaultDocument returns the bundled fallback document.
func DefaultDocument() Document {
	doc, err := ParseDocument("default-cargo.toml", defaultCargoFile, "toml")
	if err != nil {
		// The file is embedded at build time; a parse failure is a packaging bug.
		panic(fmt.Sprintf("bundled default document is invalid: %v", err))
	}
	return doc
}

// isTrue interprets a resolved flag value.
func isTrue(val string) bool {
	return val == "1" || val == "true"
}

func computeRootstrapPath(r *resolver) (string, error) {
	apiVersion, err := r.value(APIVersion)
	if err != nil {
		return "", err
	}
	appProfile, err := r.value(AppProfile)
	if err != nil {
		return "", err
	}
	emulator, err := r.value(IsEmulator)
	if err != nil {
		return "", err
	}
	studioPath, err := r.value(StudioPath)
	if err != nil {
		return "", err
	}

	target := "device"
	if isTrue(emulator) {
		target = "emulator"
	}

	return pushPath(studioPath,
		"platforms",
		"tizen-"+apiVersion,
		appProfile,
		"rootstraps",
		fmt.Sprintf("%s-%s-%s.core", appProfile, apiVersion, target),
	), nil
}

func computeSelectedTriple(r *resolver) (string, error) {
	emulator, err := r.value(IsEmulator)
	if err != nil {
		return "", err
	}
	if isTrue(emulator) {
		return r.value(EmulatorTriple)
	}
	return r.value(DeviceTriple)
}

// computeToolchain picks the newest gcc toolchain installed for the selected triple.
// "armv7l-tizen-linux-gnueabi-gcc-9.2" yields "gcc-9.2".
func computeToolchain(r *resolver) (string, error) {
	studioPath, err := r.value(StudioPath)
	if err != nil {
		return "", err
	}
	triple, err := r.value(SelectedTriple)
	if err != nil {
		return "", err
	}

	toolsDir := pushPath(studioPath, "tools")
	info, err := os.Stat(toolsDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", errNoToolsDir, toolsDir)
	}

	entries, err := os.ReadDir(toolsDir)
	if err != nil {
		return "", fmt.Errorf("failed to read '%s': %w", toolsDir, err)
	}

	var available []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, triple) || !strings.Contains(name, "gcc") {
			continue
		}
		available = append(available, strings.TrimPrefix(name, triple+"-"))
	}

	if len(available) == 0 {
		return "", fmt.Errorf("%w for %s in %s", errNoToolchain, triple, toolsDir)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(available)))
	return available[0], nil
}

func computeToolchainPath(r *resolver) (string, error) {
	studioPath, err := r.value(StudioPath)
	if err != nil {
		return "", err
	}
	toolchain, err := r.value(Toolchain)
	if err != nil {
		return "", err
	}
	triple, err := r.value(SelectedTriple)
	if err != nil {
		return "", err
	}

	return pushPath(studioPath, "tools", triple+"-"+toolchain, "bin"), nil
}

func computeTizenBin(r *resolver) (string, error) {
	studioPath, err := r.value(StudioPath)
	if err != nil {
		return "", err
	}
	return pushPath(studioPath, "tools", "ide", "bin", "tizen"), nil
}

// computeRustLinker pushes the toolchain path onto itself before the gcc name.
// An absolute toolchain path replaces itself, so the usual result is
// <toolchain_path>/<triple>-gcc; a relative one is repeated.
func computeRustLinker(r *resolver) (string, error) {
	toolchainPath, err := r.value(ToolchainPath)
	if err != nil {
		return "", err
	}
	triple, err := r.value(SelectedTriple)
	if err != nil {
		return "", err
	}

	return pushPath(toolchainPath, toolchainPath, triple+"-gcc"), nil
}
