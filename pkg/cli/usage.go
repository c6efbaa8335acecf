package cli

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var installTemplateFuncs sync.Once

// UsageTemplate is cobra's usage template with command arguments listed
// under their own heading
const UsageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{zrArgumentFlags . | trimTrailingWhitespaces}}{{end}}{{if zrHasCommandFlags .}}

` + GroupCommands + `:
{{zrCommandFlags . | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// InstallUsage makes cmd print command arguments under their own heading
func InstallUsage(cmd *cobra.Command) {
	installTemplateFuncs.Do(func() {
		cobra.AddTemplateFunc("zrArgumentFlags", func(c *cobra.Command) string {
			return filterFlags(c.LocalFlags(), false).FlagUsages()
		})
		cobra.AddTemplateFunc("zrCommandFlags", func(c *cobra.Command) string {
			return filterFlags(c.LocalFlags(), true).FlagUsages()
		})
		cobra.AddTemplateFunc("zrHasCommandFlags", func(c *cobra.Command) bool {
			return filterFlags(c.LocalFlags(), true).HasAvailableFlags()
		})
	})
	cmd.SetUsageTemplate(UsageTemplate)
}

// filterFlags returns the flags of fs that are, or are not, commands
func filterFlags(fs *pflag.FlagSet, commands bool) *pflag.FlagSet {
	out := pflag.NewFlagSet("filtered", pflag.ContinueOnError)
	fs.VisitAll(func(f *pflag.Flag) {
		if isCommandFlag(f) == commands {
			out.AddFlag(f)
		}
	})
	return out
}

func isCommandFlag(f *pflag.Flag) bool {
	for _, group := range f.Annotations[AnnotationGroup] {
		if strings.EqualFold(group, GroupCommands) {
			return true
		}
	}
	return false
}
