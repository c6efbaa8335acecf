// Package scheduler hands the post-generation commands selected while
// resolving arguments to a shell runner, one after the other.
package scheduler

import (
	"context"

	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/resolve"
	"github.com/beltram/zr/pkg/shell"
)

// Commands returns the command lines of ds in execution order: ascending
// order, ties broken by command line.
func Commands(ds *resolve.DataSet) []string {
	return ds.Commands()
}

// Outcome is the result of one command
type Outcome struct {
	CommandLine string
	Err         error
}

// Run runs the commands of ds sequentially in dir. A failing command is
// logged and the next one still runs; outcomes are returned in order.
// Run stops early only when ctx is done.
func Run(ctx context.Context, runner shell.Runner, dir string, ds *resolve.DataSet) []Outcome {
	log := logging.GetLogger("scheduler")

	commands := Commands(ds)
	outcomes := make([]Outcome, 0, len(commands))
	for _, commandLine := range commands {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Str("command", commandLine).Msg("Not running command")
			break
		}

		log.Info().Str("command", commandLine).Str("dir", dir).Msg("Running command")
		err := runner.Run(ctx, dir, commandLine)
		if err != nil {
			log.Warn().Err(err).Str("command", commandLine).Msg("Command failed")
		}
		outcomes = append(outcomes, Outcome{CommandLine: commandLine, Err: err})
	}
	return outcomes
}

// Failed returns the outcomes carrying an error
func Failed(outcomes []Outcome) []Outcome {
	var out []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}
