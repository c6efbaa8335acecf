package zr

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beltram/zr/pkg/git"
)

func newUpgradeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "upgrade",
		Short:   MsgUpgradeShort,
		GroupID: "manage",
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

			results := git.NewSyncer().SyncAll(cmd.Context(), cfg.Repositories, a.opts.Paths.RepositoryDir)

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					p.Error(MsgRepositoryFailed, r.URL, r.Err)
					continue
				}
				p.Success(MsgRepositorySynced, r.URL, p.Muted(string(r.Status)))
			}
			if failed > 0 {
				return fmt.Errorf(MsgErrUpgrade, failed, len(results))
			}
			return nil
		},
	}
}
