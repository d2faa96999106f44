// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/libprobe"
	"github.com/arc-language/libprobe/pkg/core"
)

func newCheckCmd(st *state) *cobra.Command {
	var (
		format  string
		require bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Detect libcmaes and print its build environment",
		Long: `Search for libcmaes/cmaes.h and one of libcmaes.so, libcmaes.a or
libcmaes.dylib. When both are present the build-environment record is
printed to stdout. A missing library is not an error unless --require is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = st.config.Format
			}
			if err := (&core.Config{Format: format}).Validate(); err != nil {
				return err
			}

			d, err := st.detector(cmd)
			if err != nil {
				return fmt.Errorf("creating detector: %w", err)
			}

			res := d.Detect(cmd.Context(), st.request())
			if !res.Found() {
				if require {
					return &libprobe.Error{Op: "check", Library: res.Spec.Name, Root: st.config.LibCMAES, Err: libprobe.ErrNotFound}
				}
				return nil
			}

			return writeRecord(cmd.OutOrStdout(), res.Record(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: yaml, json, env or flags (default from config)")
	cmd.Flags().BoolVar(&require, "require", false, "exit with an error when the library is not found")

	return cmd
}

func newFlagsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "Print compiler and linker flags for libcmaes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := st.detector(cmd)
			if err != nil {
				return fmt.Errorf("creating detector: %w", err)
			}

			res := d.Detect(cmd.Context(), st.request())
			return writeRecord(cmd.OutOrStdout(), res.Record(), core.FormatFlags)
		},
	}
}
