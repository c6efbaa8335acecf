// Package zr wires zr's command tree. Template commands under `zr new` are
// built from the configured repositories when the tree is created.
package zr

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/beltram/zr/internal/version"
	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/paths"
	"github.com/beltram/zr/pkg/ui"
)

const configFlag = "config"

// NewRootCmd creates the root command of the process, reading --config
// ahead of parsing so that template commands come from that file.
func NewRootCmd() (*cobra.Command, error) {
	return NewRootCmdWithOptions(Options{ConfigPath: configPathFromArgs(os.Args[1:])})
}

// NewRootCmdWithOptions creates the root command on the given collaborators
func NewRootCmdWithOptions(opts Options) (*cobra.Command, error) {
	a, err := newApp(opts)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	var (
		verbosity  int
		logLevel   string
		configPath string
		format     string
	)

	rootCmd := &cobra.Command{
		Use:     "zr",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(logging.Options{Verbosity: verbosity, Level: logLevel}); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			a.opts.Format = f
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetIn(a.opts.In)
	rootCmd.SetOut(a.opts.Out)
	rootCmd.SetErr(a.opts.Err)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", MsgFlagLogLevel)
	rootCmd.PersistentFlags().StringVar(&configPath, configFlag, a.opts.ConfigPath, MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "generate", Title: "GENERATE:"})
	rootCmd.AddGroup(&cobra.Group{ID: "manage", Title: "MANAGE:"})

	rootCmd.AddCommand(newNewCmd(a, rootCmd.PersistentFlags()))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newDescribeCmd(a))
	rootCmd.AddCommand(newUpgradeCmd(a))
	rootCmd.AddCommand(newGetConfigCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd, nil
}

// configPathFromArgs returns the value of --config in args, ignoring every
// other flag
func configPathFromArgs(args []string) string {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	path := fs.String(configFlag, "", "")
	_ = fs.Parse(args)
	return paths.ExpandHome(*path)
}
