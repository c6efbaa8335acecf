package shell

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
)

// Runner runs one command line in a directory
type Runner interface {
	Run(ctx context.Context, dir, commandLine string) error
}

// SystemRunner runs command lines through an installed shell
type SystemRunner struct {
	Shell  Shell
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner
func (r *SystemRunner) Run(ctx context.Context, dir, commandLine string) error {
	log := logging.GetLogger("shell")

	args := r.Shell.commandArgs(commandLine)
	logging.LogCommand(args[0], args[1:])

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = orDiscard(r.Stdout)
	cmd.Stderr = orDiscard(r.Stderr)

	if err := cmd.Run(); err != nil {
		log.Debug().Err(err).Str("command", commandLine).Str("dir", dir).Msg("Command failed")
		return errors.Wrapf(err, errors.ErrCommandFailed, "command '%s' failed", commandLine).
			WithDetail("command", commandLine)
	}
	return nil
}

// InterpreterRunner runs command lines with the embedded POSIX shell
// interpreter, for hosts where no shell could be detected
type InterpreterRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner
func (r *InterpreterRunner) Run(ctx context.Context, dir, commandLine string) error {
	logging.LogCommand("interp", []string{commandLine})

	prog, err := Validate(commandLine)
	if err != nil {
		return err
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(os.Stdin, orDiscard(r.Stdout), orDiscard(r.Stderr)),
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create interpreter")
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if stderrors.As(err, &status) {
			return errors.Newf(errors.ErrCommandFailed, "command '%s' exited with status %d", commandLine, status).
				WithDetail("command", commandLine).
				WithDetail("status", int(status))
		}
		return errors.Wrapf(err, errors.ErrCommandFailed, "command '%s' failed", commandLine).
			WithDetail("command", commandLine)
	}
	return nil
}

// Validate parses commandLine as a POSIX shell program
func Validate(commandLine string) (*syntax.File, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(commandLine), "command")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidValue, "invalid command '%s'", commandLine).
			WithDetail("command", commandLine)
	}
	return prog, nil
}

// NewRunner returns a SystemRunner on the detected shell, falling back to
// the embedded interpreter when none is detected or installed.
func NewRunner(stdout, stderr io.Writer) Runner {
	log := logging.GetLogger("shell")

	sh, err := Detect()
	if err == nil {
		if _, lookErr := exec.LookPath(sh.commandArgs("")[0]); lookErr == nil {
			log.Debug().Str("shell", string(sh)).Msg("Running commands with detected shell")
			return &SystemRunner{Shell: sh, Stdout: stdout, Stderr: stderr}
		}
	}
	log.Debug().Err(err).Msg("No usable shell, running commands with the embedded interpreter")
	return &InterpreterRunner{Stdout: stdout, Stderr: stderr}
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
