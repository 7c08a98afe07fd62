package tizen

import (
	"os"
	"strings"
)

// EnvLookupFunc looks up an environment variable.
// The boolean reports whether the variable is set, so an empty value still counts.
type EnvLookupFunc func(name string) (string, bool)

// EnvName converts a dotted structured path or an explicit name to an environment variable name.
// Example: "tizen.target.armv7l-tizen-linux-gnueabi.rust_triple" becomes
// "TIZEN_TARGET_ARMV7L_TIZEN_LINUX_GNUEABI_RUST_TRIPLE".
func EnvName(path string) string {
	env := strings.ToUpper(path)
	env = strings.ReplaceAll(env, ".", "_")
	env = strings.ReplaceAll(env, "-", "_")
	return env
}

// MapEnv returns an EnvLookupFunc backed by a fixed map.
func MapEnv(vars map[string]string) EnvLookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func defaultEnvLookup() EnvLookupFunc {
	return os.LookupEnv
}
