package zr

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/beltram/zr/pkg/cli"
	"github.com/beltram/zr/pkg/generate"
	"github.com/beltram/zr/pkg/library"
	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/resolve"
	"github.com/beltram/zr/pkg/schema"
)

func newNewCmd(a *app, global *pflag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new <lang> <kind> <project-name>",
		Short:   MsgNewShort,
		GroupID: "generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			if len(a.library.Templates()) == 0 {
				a.printer().Warn(MsgNoTemplates)
			}
			return fmt.Errorf(MsgErrNoCommand)
		},
	}

	for _, lang := range a.library.Languages() {
		langCmd := &cobra.Command{
			Use:   lang,
			Short: fmt.Sprintf(MsgLangShort, lang),
		}
		for _, tpl := range a.library.Kinds(lang) {
			langCmd.AddCommand(newTemplateCmd(a, tpl, global))
		}
		cmd.AddCommand(langCmd)
	}
	return cmd
}

// newTemplateCmd builds `zr new <lang> <kind>` with one flag per argument
// of the template's schema
func newTemplateCmd(a *app, tpl library.Template, global *pflag.FlagSet) *cobra.Command {
	s := tpl.Schema()

	cmd := &cobra.Command{
		Use:   tpl.Kind + " <" + schema.ProjectNameArg + ">",
		Short: fmt.Sprintf("Generate a %s %s project", tpl.Lang, tpl.Kind),
		Args:  cobra.ExactArgs(1),
	}
	// registered first so that no template argument takes -h
	cmd.Flags().BoolP("help", "h", false, "help for "+tpl.Kind)

	binding := cli.Bind(cmd.Flags(), s, global)
	cli.InstallUsage(cmd)
	cli.RegisterCompletions(cmd, s)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.new")

		binding.SetArgs(args)
		if err := binding.Validate(); err != nil {
			return err
		}
		ds := resolve.Resolve(s, binding)
		logger.Debug().Strs("keys", ds.Keys()).Strs("commands", ds.Commands()).Msg("Arguments resolved")

		engine, err := tpl.Engine()
		if err != nil {
			return err
		}
		dir, err := a.workDir()
		if err != nil {
			return err
		}

		gen := &generate.Generator{
			Engine:    engine,
			Runner:    a.runner(),
			Confirmer: a.confirmer(),
		}
		report, err := gen.Generate(cmd.Context(), dir, ds)
		if err != nil {
			return err
		}
		printReport(a, report)
		return nil
	}
	return cmd
}

func printReport(a *app, report *generate.Report) {
	p := a.printer()

	for _, err := range report.Failed {
		p.Warn(MsgFileFailed, err)
	}
	if report.GitErr != nil {
		p.Warn(MsgGitFailed, report.GitErr)
	}
	for _, o := range append(report.Commands, report.Opened...) {
		if o.Err != nil {
			p.Warn(MsgCommandFailed, p.Command(o.CommandLine), o.Err)
		} else {
			p.Success(MsgCommandRan, p.Command(o.CommandLine))
		}
	}

	if report.Erased {
		p.Success(MsgProjectErased, p.Path(report.ProjectDir))
		return
	}
	p.Success(MsgProjectCreated, p.Path(report.ProjectDir))
	p.Line("  "+MsgFilesWritten, len(report.Written))
}
