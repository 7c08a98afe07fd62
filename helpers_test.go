package tizen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	deviceTriple   = "armv7l-tizen-linux-gnueabi"
	emulatorTriple = "i586-tizen-linux-gnueabi"
)

const testManifest = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns="http://tizen.org/ns/packages" api-version="5.5" package="org.example.hello" version="1.0.0">
    <profile name="wearable" />
    <ui-application appid="org.example.hello.app" exec="hello" type="capp" multiple="false" nodisplay="false">
        <label>Hello</label>
    </ui-application>
</manifest>
`

const bareManifest = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns="http://tizen.org/ns/packages" package="org.example.bare">
</manifest>
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newProject creates a project directory nested one level below a fresh home,
// so the override walk never leaves the test's temp tree.
func newProject(t *testing.T, cargo, manifest string) (project, home string) {
	t.Helper()
	home = t.TempDir()
	project = filepath.Join(home, "app")
	writeFile(t, filepath.Join(project, CargoFileName), cargo)
	writeFile(t, filepath.Join(project, ManifestFileName), manifest)
	return project, home
}

// newStudio creates a studio tree with the given entries under tools/.
func newStudio(t *testing.T, tools ...string) string {
	t.Helper()
	studio := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(studio, "tools"), 0755))
	for _, name := range tools {
		require.NoError(t, os.MkdirAll(filepath.Join(studio, "tools", name, "bin"), 0755))
	}
	return studio
}

func cargoWithStudio(studio string, extra string) string {
	return `[package]
name = "hello"
version = "0.1.0"

[tizen]
studio_path = "` + filepath.ToSlash(studio) + `"
` + extra
}

func newTestContext(t *testing.T, project, home string, env map[string]string, args Args) *Context {
	t.Helper()
	ctx, err := NewBuilder().
		WithWorkDir(project).
		WithHomeDir(home).
		WithEnvLookup(MapEnv(env)).
		WithArgs(args).
		Build()
	require.NoError(t, err)
	return ctx
}

func resolveValue(t *testing.T, ctx *Context, k Key) ResolvedValue {
	t.Helper()
	rv, err := ctx.Resolve(k)
	require.NoError(t, err, "resolving %s", k)
	return rv
}
