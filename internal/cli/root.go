// Package cli implements the cargo-tizen command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	tizen "github.com/lixenwraith/cargo-tizen"
)

// subcommandName is the argument cargo passes when run as "cargo tizen ...".
const subcommandName = "tizen"

type globalOptions struct {
	dir      string
	emulator bool
	verbose  bool
}

func (o *globalOptions) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.dir, "dir", "C", ".", "project directory containing Cargo.toml")
	fs.BoolVarP(&o.emulator, "emulator", "e", false, "target the emulator instead of a device")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log resolution steps to stderr")
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "cargo-tizen",
		Short:         "Resolve the Tizen build configuration of a Rust project",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	opts.bind(root.PersistentFlags())

	root.AddCommand(
		newConfigCommand(opts),
		newEnvCommand(opts),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(normalizeArgs(args))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, ErrorStyle.Render("error:"), err)
		return 1
	}
	return 0
}

// normalizeArgs drops the subcommand name cargo inserts before the real arguments.
func normalizeArgs(args []string) []string {
	if len(args) > 0 && args[0] == subcommandName {
		return args[1:]
	}
	return args
}

// loadEnvironment resolves the project selected by the global flags.
func loadEnvironment(cmd *cobra.Command, opts *globalOptions) (*tizen.Environment, error) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx, err := tizen.NewBuilder().
		WithWorkDir(opts.dir).
		WithArgs(tizen.Args{Emulator: opts.emulator}).
		WithLogger(logger).
		Build()
	if err != nil {
		return nil, err
	}
	return tizen.NewEnvironment(ctx)
}
