// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/libprobe/pkg/core"
)

func newConfigCmd(st *state) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the effective configuration",
		Long: `Print the configuration after the config file, LIBPROBE_LIBCMAES and
command-line flags have been applied. With --save it is written back to the
config file so later runs pick it up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save {
				path := st.cfgFile
				if path == "" {
					path = core.DefaultConfigPath()
				}
				if err := core.SaveConfig(st.config, path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved config to %s\n", path)
			}

			data, err := yaml.Marshal(st.config)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the effective configuration to the config file")

	return cmd
}
