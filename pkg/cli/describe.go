package cli

import (
	"fmt"
	"strings"

	"github.com/beltram/zr/pkg/schema"
)

// Describe renders the arguments of s as a markdown document
func Describe(title string, s *schema.Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "`<%s>` %s\n\n", schema.ProjectNameArg, schema.ProjectNameAbout)

	var args, commands []schema.Definition
	for _, d := range s.Definitions() {
		if _, ok := d.KindOrDefault().(schema.Command); ok {
			commands = append(commands, d)
		} else {
			args = append(args, d)
		}
	}

	if len(args) > 0 {
		b.WriteString("## Arguments\n\n")
		b.WriteString("| Flag | Kind | Default | Possible values | Description |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, d := range args {
			var def, allowed string
			switch k := d.KindOrDefault().(type) {
			case schema.Scalar:
				if k.Default != nil {
					def = *k.Default
				}
				allowed = strings.Join(k.Allowed, ", ")
			case schema.MultiValue:
				def = strings.Join(k.Default, ", ")
				allowed = strings.Join(k.Allowed, ", ")
			case schema.Flag:
				if k.Negate {
					def = "on"
				}
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				flagCell(d), d.KindOrDefault().Name(), cell(def), cell(allowed), cell(d.About))
		}
		b.WriteString("\n")
	}

	if len(commands) > 0 {
		b.WriteString("## Commands\n\n")
		b.WriteString("| Flag | Order | Runs by default | Command |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, d := range commands {
			k := d.KindOrDefault().(schema.Command)
			fmt.Fprintf(&b, "| %s | %d | %t | `%s` |\n", flagCell(d), k.Order, k.DefaultRun, k.CommandLine)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func flagCell(d schema.Definition) string {
	if d.Short != "" {
		return fmt.Sprintf("`-%s`, `--%s`", d.Short, FlagName(d))
	}
	return fmt.Sprintf("`--%s`", FlagName(d))
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}
