// Package generate creates a project from a template and the values
// resolved for it.
//
// Generation runs these steps in order, stopping only on the first two:
//
//  1. an existing project directory is erased when forced, or when the
//     user agrees to it; otherwise generation is aborted
//  2. every template is instantiated and written below the project
//     directory, `!` escaped names renamed to dot names
//  3. git init, staging .gitignore
//  4. post-generation commands, in order
//  5. opening the project in IntelliJ and/or VS Code
//  6. erasing the project for a dry run
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/git"
	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/render"
	"github.com/beltram/zr/pkg/resolve"
	"github.com/beltram/zr/pkg/scheduler"
	"github.com/beltram/zr/pkg/shell"
	"github.com/beltram/zr/pkg/ui"
	"github.com/beltram/zr/pkg/writer"
)

// Commands opening the generated project, run from its directory
const (
	OpenIdea = "idea ."
	OpenCode = "code ."
)

// Generator holds the collaborators of a generation
type Generator struct {
	Engine    *render.Engine
	Runner    shell.Runner
	Confirmer ui.Confirmer
	// SkipGit disables the repository initialisation
	SkipGit bool
}

// Report describes what a generation did
type Report struct {
	ProjectDir string
	Replaced   bool
	Written    []string
	Failed     []error
	GitErr     error
	Commands   []scheduler.Outcome
	Opened     []scheduler.Outcome
	Erased     bool
}

// Generate creates the project of ds in parentDir
func (g *Generator) Generate(ctx context.Context, parentDir string, ds *resolve.DataSet) (*Report, error) {
	logger := logging.GetLogger("generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	report := &Report{ProjectDir: filepath.Join(parentDir, ds.ProjectName())}

	replaced, err := g.prepare(report.ProjectDir, ds)
	if err != nil {
		return report, err
	}
	report.Replaced = replaced

	if err := os.MkdirAll(report.ProjectDir, writer.DirMode); err != nil {
		return report, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", report.ProjectDir)
	}

	w := writer.New(report.ProjectDir)
	report.Written, report.Failed = w.WriteAll(ctx, g.Engine.InstantiateAll(ds))
	if err := w.UnescapeDirs(); err != nil {
		logger.Warn().Err(err).Msg("Failed renaming hidden directories")
		report.Failed = append(report.Failed, err)
	}
	logger.Info().
		Str("project", report.ProjectDir).
		Int("written", len(report.Written)).
		Int("failed", len(report.Failed)).
		Msg("Project files written")

	if !g.SkipGit {
		if err := git.InitProject(report.ProjectDir); err != nil {
			logger.Warn().Err(err).Msg("Failed to initialise git repository")
			report.GitErr = err
		}
	}

	report.Commands = scheduler.Run(ctx, g.Runner, report.ProjectDir, ds)
	report.Opened = g.open(ctx, logger, report.ProjectDir, ds)

	if ds.Dry() {
		if err := writer.Remove(report.ProjectDir); err != nil {
			return report, err
		}
		report.Erased = true
		logger.Info().Str("project", report.ProjectDir).Msg("Dry run, project erased")
	}
	return report, nil
}

// prepare applies the overwrite policy to an existing project directory
func (g *Generator) prepare(projectDir string, ds *resolve.DataSet) (bool, error) {
	if _, err := os.Stat(projectDir); err != nil {
		return false, nil
	}

	if !ds.Force() {
		question := fmt.Sprintf("Project %s already exists, erase it?", ds.ProjectName())
		yes, err := g.confirmer().Confirm(question)
		if err != nil {
			return false, errors.Wrap(err, errors.ErrAborted, "failed to read answer")
		}
		if !yes {
			return false, errors.Newf(errors.ErrAborted, "project %s already exists", ds.ProjectName()).
				WithDetail("dir", projectDir)
		}
	}

	if err := writer.Remove(projectDir); err != nil {
		return false, err
	}
	return true, nil
}

func (g *Generator) confirmer() ui.Confirmer {
	if g.Confirmer == nil {
		return ui.StaticConfirmer(false)
	}
	return g.Confirmer
}

func (g *Generator) open(ctx context.Context, logger zerolog.Logger, projectDir string, ds *resolve.DataSet) []scheduler.Outcome {
	var commands []string
	if ds.Idea() {
		commands = append(commands, OpenIdea)
	}
	if ds.Code() {
		commands = append(commands, OpenCode)
	}

	var outcomes []scheduler.Outcome
	for _, commandLine := range commands {
		err := g.Runner.Run(ctx, projectDir, commandLine)
		if err != nil {
			logger.Warn().Err(err).Str("command", commandLine).Msg("Failed to open project")
		}
		outcomes = append(outcomes, scheduler.Outcome{CommandLine: commandLine, Err: err})
	}
	return outcomes
}
