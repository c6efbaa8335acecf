package zr

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		GroupID: "generate",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer()
			templates := a.library.Templates()
			if len(templates) == 0 {
				p.Warn(MsgNoTemplates)
				return nil
			}
			for _, t := range templates {
				p.Line("%s %s  %s", t.Lang, t.Kind, p.Muted(t.Path))
			}
			return nil
		},
	}
}
