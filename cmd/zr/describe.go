package zr

import (
	"github.com/spf13/cobra"

	"github.com/beltram/zr/pkg/cli"
	"github.com/beltram/zr/pkg/ui"
)

func newDescribeCmd(a *app) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:     "describe <lang> <kind>",
		Short:   MsgDescribeShort,
		GroupID: "generate",
		Args:    cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return a.library.Languages(), cobra.ShellCompDirectiveNoFileComp
			case 1:
				var kinds []string
				for _, t := range a.library.Kinds(args[0]) {
					kinds = append(kinds, t.Kind)
				}
				return kinds, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := a.library.Find(args[0], args[1])
			if err != nil {
				return err
			}
			md := cli.Describe(tpl.Lang+" "+tpl.Kind, tpl.Schema())
			_, err = a.printer().Writer().Write([]byte(ui.RenderMarkdown(md, a.format(), width)))
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 100, "Wrap width of the rendered table")
	return cmd
}
