// FILE: lixenwraith/cargo-tizen/discovery.go
package tizen

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// CargoFileName is the project's primary structured file.
	CargoFileName = "Cargo.toml"
	// ManifestFileName is the Tizen application manifest at the project root.
	ManifestFileName = "tizen-manifest.xml"

	cargoConfigDir = ".cargo"
)

// cargoConfigNames are tried in order inside each .cargo directory; the first existing one is used.
var cargoConfigNames = []string{"config.toml", "config"}

// overrideDirs returns the directories searched for .cargo/config.toml overrides,
// nearest first: the work dir and each ancestor, stopping before homeDir.
// With no home directory only the work dir is searched.
func overrideDirs(workDir, homeDir string) []string {
	dirs := []string{workDir}
	if homeDir == "" {
		return dirs
	}

	home := filepath.Clean(homeDir)
	dir := filepath.Clean(workDir)
	for {
		parent := filepath.Dir(dir)
		if parent == dir || parent == home {
			return dirs
		}
		dirs = append(dirs, parent)
		dir = parent
	}
}

// discoverOverrides returns the override file paths that exist, nearest first.
func discoverOverrides(workDir, homeDir string) []string {
	var paths []string
	for _, dir := range overrideDirs(workDir, homeDir) {
		for _, name := range cargoConfigNames {
			path := filepath.Join(dir, cargoConfigDir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				paths = append(paths, path)
				break
			}
		}
	}
	return paths
}

// loadOverrides parses every discovered override file.
// Override files are optional: unreadable or unparsable ones are skipped.
func loadOverrides(workDir, homeDir string, logger *slog.Logger) []Document {
	var docs []Document
	for _, path := range discoverOverrides(workDir, homeDir) {
		doc, err := LoadDocument(path)
		if err != nil {
			logger.Debug("skipping override file", "path", path, "error", err)
			continue
		}
		logger.Debug("loaded override file", "path", path)
		docs = append(docs, doc)
	}
	return docs
}

// userHomeDir returns $HOME through the context's env lookup, or "" if unset.
func userHomeDir(lookup EnvLookupFunc) string {
	home, _ := lookup("HOME")
	return home
}
