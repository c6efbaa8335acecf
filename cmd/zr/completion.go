package zr

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/beltram/zr/pkg/shell"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "manage",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				sh  shell.Shell
				err error
			)
			if len(args) == 1 {
				sh, err = shell.Parse(args[0])
			} else {
				sh, err = shell.Detect()
			}
			if err != nil {
				return err
			}
			log.Debug().Str("shell", string(sh)).Msg("Generating completion")
			return GenCompletion(cmd.Root(), sh, cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script of sh for root
func GenCompletion(root *cobra.Command, sh shell.Shell, out io.Writer) error {
	switch sh {
	case shell.Bash:
		return root.GenBashCompletionV2(out, true)
	case shell.Zsh:
		return root.GenZshCompletion(out)
	case shell.Fish:
		return root.GenFishCompletion(out, true)
	case shell.PowerShell:
		return root.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf(MsgErrUnknownShell, sh)
	}
}
