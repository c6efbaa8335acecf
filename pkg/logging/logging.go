// Package logging configures zerolog for zr: human readable output on the
// console and an append-only log file in zr's state directory.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/paths"
)

// Options configure Setup
type Options struct {
	// Verbosity is the number of -v flags
	Verbosity int
	// Level overrides Verbosity when set: trace, debug, info, warn or error
	Level string
	// Console receives the human readable output, stderr when nil
	Console io.Writer
	// LogFile is the log file, zr's state log file when empty
	LogFile string
}

// LevelFor maps a -v count to a level: warn, info, debug, then trace
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// ParseLevel parses a --log-level value
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "t":
		return zerolog.TraceLevel, nil
	case "debug", "d":
		return zerolog.DebugLevel, nil
	case "info", "i":
		return zerolog.InfoLevel, nil
	case "warn", "warning", "w":
		return zerolog.WarnLevel, nil
	case "error", "e":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, errors.Newf(errors.ErrInvalidValue, "unknown log level %q", s)
	}
}

// Setup configures the global logger. A log file that cannot be opened is
// reported on the console and skipped.
func Setup(opts Options) error {
	level := LevelFor(opts.Verbosity)
	if opts.Level != "" {
		l, err := ParseLevel(opts.Level)
		if err != nil {
			return err
		}
		level = l
	}
	zerolog.SetGlobalLevel(level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = LogFilePath()
	}
	file, fileErr := openLogFile(logFile)
	if fileErr == nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Str("level", level.String()).Str("logFile", logFile).Msg("Logger initialized")
	return nil
}

// SetupLogger configures the global logger from a -v count
func SetupLogger(verbosity int) {
	_ = Setup(Options{Verbosity: verbosity})
}

// GetLogger returns the global logger tagged with component name. Call it
// after Setup: the returned logger keeps the writers of the moment.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns zr's log file, in the working directory when no
// state directory can be resolved
func LogFilePath() string {
	p, err := paths.New()
	if err != nil {
		return paths.LogFileName
	}
	return p.LogFilePath()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create log directory")
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to open log file")
	}
	return file, nil
}

// LogCommand logs the execution of a command
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns the function
// logging its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
