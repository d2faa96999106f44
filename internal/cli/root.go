// internal/cli/root.go
package cli

import (
	"fmt"
	"io"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/libprobe/pkg/core"
	"github.com/arc-language/libprobe/pkg/detect"
)

// state is shared by the commands of one command tree
type state struct {
	cfgFile string
	debug   bool
	noColor bool
	option  detect.OptionDescriptor
	config  *core.Config
}

// Execute executes the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	st := &state{option: detect.Option(detect.LibCMAES)}

	rootCmd := &cobra.Command{
		Use:   "libprobe",
		Short: "Optional native library detection",
		Long: `libprobe - optional native library detection

Looks for libcmaes headers and binaries on this machine and prints the
include paths, library paths, defines and link names a build needs.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.initConfig(cmd)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&st.cfgFile, "config", "", "config file (default is $HOME/.config/libprobe/config.yaml)")
	flags.BoolVar(&st.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&st.noColor, "no-color", false, "disable colored status output")
	st.option.Register(flags)

	rootCmd.AddCommand(newCheckCmd(st))
	rootCmd.AddCommand(newFlagsCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (st *state) initConfig(cmd *cobra.Command) error {
	cfg, err := core.LoadConfig(st.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if cmd.Flags().Changed(st.option.Name) {
		cfg.LibCMAES = st.option.RequestFromFlags(cmd.Flags()).OverridePath
	}
	if st.debug {
		cfg.Debug = true
	}
	if st.noColor {
		cfg.Color = false
	}

	st.config = cfg
	return nil
}

func (st *state) logger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if st.config.Debug {
		level = log.DebugLevel
	}
	return &log.Logger{
		Level: level,
		Writer: &log.ConsoleWriter{
			Writer:      w,
			ColorOutput: st.config.Color,
		},
	}
}

func (st *state) detector(cmd *cobra.Command) (*detect.Detector, error) {
	return detect.New(detect.Config{
		Spec:     detect.LibCMAES,
		Reporter: &detect.TextReporter{W: cmd.ErrOrStderr(), Color: st.config.Color},
		Logger:   st.logger(cmd.ErrOrStderr()),
	})
}

func (st *state) request() detect.Request {
	return detect.Request{OverridePath: st.config.LibCMAES}
}
