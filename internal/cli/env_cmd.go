package cli

import (
	"github.com/spf13/cobra"

	tizen "github.com/lixenwraith/cargo-tizen"
)

func newEnvCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print shell exports for a cross build",
		Long: "Print the resolved values and the pkg-config, RUSTFLAGS and linker variables\n" +
			"a cross build needs, as export lines for eval.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, global)
			if err != nil {
				return err
			}
			return env.Dump(cmd.OutOrStdout(), tizen.FormatEnv)
		},
	}
}
