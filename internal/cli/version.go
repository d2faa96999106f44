// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "libprobe version "+version)
			fmt.Fprintln(cmd.OutOrStdout(), "Optional native library detection")
		},
	}
}
