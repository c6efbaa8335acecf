package zr

import (
	"github.com/spf13/cobra"

	"github.com/beltram/zr/pkg/config"
)

func newGetConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get-config",
		Short:   MsgGetConfigShort,
		GroupID: "manage",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printer().Line("%s", a.opts.ConfigPath)
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "manage",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <url>",
		Short: MsgConfigAddShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfig(a, func(cfg *config.Config) bool {
				p := a.printer()
				if !cfg.AddRepository(args[0]) {
					p.Warn(MsgRepositoryKnown, args[0])
					return false
				}
				p.Success(MsgRepositoryAdded, args[0])
				p.Line("  " + MsgUpgradeHint)
				return true
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "remove <url>",
		Aliases: []string{"rm"},
		Short:   MsgConfigRmShort,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfig(a, func(cfg *config.Config) bool {
				p := a.printer()
				if !cfg.RemoveRepository(args[0]) {
					p.Warn(MsgRepositoryUnknown, args[0])
					return false
				}
				p.Success(MsgRepositoryRemoved, args[0])
				return true
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgConfigListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			p := a.printer()
			if len(cfg.Repositories) == 0 {
				p.Warn(MsgNoRepositories)
				return nil
			}
			for _, url := range cfg.Repositories {
				p.Line("%s", url)
			}
			return nil
		},
	})
	return cmd
}

// editConfig applies edit to the configuration file, environment overrides
// left out, and saves it when edit reports a change
func editConfig(a *app, edit func(*config.Config) bool) error {
	cfg, err := config.LoadFile(a.opts.ConfigPath)
	if err != nil {
		return err
	}
	if !edit(cfg) {
		return nil
	}
	return config.Save(cfg)
}
