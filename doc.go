// File: lixenwraith/cargo-tizen/doc.go

// Package tizen resolves the cross-compilation and packaging parameters of a Tizen
// application written in Rust: studio location, rootstrap, target triples, toolchain,
// linker and the application identity declared in tizen-manifest.xml.
//
// Every parameter is looked up in a fixed order and the first source that defines it wins:
//  1. Environment variables (TIZEN_STUDIO_PATH, TIZEN_APP_ID, ...)
//  2. The application manifest (tizen-manifest.xml, XPath queries)
//  3. Cargo.toml, then .cargo/config.toml files from the project up to $HOME
//  4. Command-line arguments (--emulator)
//  5. Bundled defaults, then values computed from other parameters
//
// Quick Start:
//
//	env, err := tizen.Load(".", tizen.Args{Emulator: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(env.RustTriple, env.RustLinker)
//	for k, v := range env.BuildEnv() {
//	    fmt.Printf("%s=%s\n", k, v)
//	}
//
// Per-triple parameters live under a target table keyed by the selected Tizen triple:
//
//	[tizen.target.armv7l-tizen-linux-gnueabi]
//	rust_triple = "armv7-unknown-linux-gnueabi"
//	toolchain_path = "/opt/tizen/tools/arm-linux-gnueabi-gcc-9.2"
//
// Single keys can be resolved with provenance through a Context:
//
//	ctx, err := tizen.NewBuilder().
//	    WithWorkDir(dir).
//	    WithLogger(slog.Default()).
//	    Build()
//	rv, err := ctx.Resolve(tizen.RootstrapPath)
//	fmt.Println(rv.Value, rv.Source)
//
// Resolution reads the inputs parsed when the Context was built and caches nothing,
// so a Context can be shared between goroutines.
package tizen
