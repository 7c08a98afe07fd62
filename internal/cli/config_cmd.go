package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	tizen "github.com/lixenwraith/cargo-tizen"
)

var errNoSuchConfig = errors.New("no config named")

type configOptions struct {
	format string
	output string
}

func newConfigCommand(global *globalOptions) *cobra.Command {
	opts := &configOptions{}

	cmd := &cobra.Command{
		Use:   "config [ENV_KEY]",
		Short: "Show resolved configuration values and where they came from",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, global)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return showDetail(cmd.OutOrStdout(), env, args[0])
			}

			if opts.output != "" {
				return env.Save(opts.output, opts.format)
			}
			if opts.format == "" || opts.format == tizen.FormatList {
				writeList(cmd.OutOrStdout(), env)
				return nil
			}
			return env.Dump(cmd.OutOrStdout(), opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "",
		"output format: "+strings.Join(tizen.Formats(), ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func showDetail(w io.Writer, env *tizen.Environment, envKey string) error {
	rv, ok := env.Lookup(envKey)
	if !ok {
		return fmt.Errorf("%w %s", errNoSuchConfig, envKey)
	}

	var structuredKey, manifestKey string
	if rv.StructuredKey != nil {
		structuredKey = *rv.StructuredKey
	}
	if rv.ManifestKey != nil {
		manifestKey = *rv.ManifestKey
	}

	fmt.Fprintln(w, TitleStyle.Render(rv.Key.String()))
	rows := [][2]string{
		{"env key", rv.EnvKey},
		{"value", rv.Value},
		{"from", string(rv.Source)},
		{"cargo key", structuredKey},
		{"manifest key", manifestKey},
	}
	for _, row := range rows {
		fmt.Fprintln(w, LabelStyle.Render(row[0])+ValueStyle.Render(row[1]))
	}
	return nil
}

func writeList(w io.Writer, env *tizen.Environment) {
	for _, rv := range env.Values {
		fmt.Fprintf(w, "%s=%s %s\n",
			KeyStyle.Render(rv.EnvKey),
			ValueStyle.Render(rv.Value),
			DimStyle.Render("# "+string(rv.Source)))
	}
}
