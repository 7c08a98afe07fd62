package tizen

// Source tags the provenance of a resolved value.
type Source string

const (
	// SourceEnv represents a value read from a process environment variable
	SourceEnv Source = "env"
	// SourceArg represents a value derived from a command-line flag
	SourceArg Source = "cli args"
	// SourceStructured represents a value read from Cargo.toml or a .cargo/config.toml override
	SourceStructured Source = "cargo file"
	// SourceManifest represents a value read from tizen-manifest.xml
	SourceManifest Source = "manifest"
	// SourceDefault represents a bundled or computed default
	SourceDefault Source = "default"
)

// ResolvedValue is the outcome of resolving one key: the value and where it came from.
// StructuredKey and ManifestKey are nil when the key has no lookup in that source.
type ResolvedValue struct {
	Key           Key
	Source        Source
	Value         string
	EnvKey        string
	StructuredKey *string
	ManifestKey   *string
}
