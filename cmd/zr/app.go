package zr

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/beltram/zr/pkg/config"
	"github.com/beltram/zr/pkg/library"
	"github.com/beltram/zr/pkg/paths"
	"github.com/beltram/zr/pkg/shell"
	"github.com/beltram/zr/pkg/ui"
)

// Options are the collaborators of the command tree. Zero values are
// replaced with the process' own.
type Options struct {
	// ConfigPath is the configuration file, the XDG one when empty
	ConfigPath string
	Paths      paths.Paths
	// WorkDir is where projects are generated, the current directory when
	// empty
	WorkDir   string
	In        *os.File
	Out       io.Writer
	Err       io.Writer
	Format    ui.Format
	Runner    shell.Runner
	Confirmer ui.Confirmer
}

// app is built once per process and shared by every command
type app struct {
	opts    Options
	cfg     *config.Config
	cfgErr  error
	library *library.Library
}

func newApp(opts Options) (*app, error) {
	if opts.Paths == nil {
		p, err := paths.New()
		if err != nil {
			return nil, err
		}
		opts.Paths = p
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = opts.Paths.ConfigFilePath()
	} else {
		opts.ConfigPath = paths.ExpandHome(opts.ConfigPath)
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	a := &app{opts: opts}
	a.cfg, a.cfgErr = config.Load(opts.ConfigPath)
	if a.cfgErr != nil {
		log.Warn().Err(a.cfgErr).Str("path", opts.ConfigPath).Msg("Failed to load configuration")
		a.library = library.New()
	} else {
		a.library = library.FromConfig(a.cfg, opts.Paths)
	}
	return a, nil
}

func (a *app) config() (*config.Config, error) {
	return a.cfg, a.cfgErr
}

func (a *app) printer() *ui.Printer {
	return ui.NewPrinter(a.opts.Out, a.opts.Format)
}

func (a *app) format() ui.Format {
	if a.opts.Format != ui.FormatAuto {
		return a.opts.Format
	}
	if f, ok := a.opts.Out.(*os.File); ok {
		return ui.DetectFormat(f)
	}
	return ui.FormatText
}

func (a *app) runner() shell.Runner {
	if a.opts.Runner != nil {
		return a.opts.Runner
	}
	return shell.NewRunner(a.opts.Out, a.opts.Err)
}

func (a *app) confirmer() ui.Confirmer {
	if a.opts.Confirmer != nil {
		return a.opts.Confirmer
	}
	return ui.NewConfirmer(a.opts.In)
}

func (a *app) workDir() (string, error) {
	if a.opts.WorkDir != "" {
		return a.opts.WorkDir, nil
	}
	return os.Getwd()
}
