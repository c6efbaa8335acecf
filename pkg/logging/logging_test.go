package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/paths"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{"trace", zerolog.TraceLevel, false},
		{"d", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"e", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantLevel zerolog.Level
	}{
		{"default warn level", Options{}, zerolog.WarnLevel},
		{"verbosity", Options{Verbosity: 2}, zerolog.DebugLevel},
		{"level wins over verbosity", Options{Verbosity: 3, Level: "error"}, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			tt.opts.Console = &console
			tt.opts.LogFile = filepath.Join(t.TempDir(), "logs", "zr.log")

			require.NoError(t, Setup(tt.opts))

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.FileExists(t, tt.opts.LogFile)

			log.Error().Msg("visible")
			assert.Contains(t, console.String(), "visible")
		})
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	err := Setup(Options{Level: "loud", Console: &bytes.Buffer{}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidValue))
}

func TestSetupLoggerUsesStateDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvZrStateDir, dir)

	SetupLogger(1)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Equal(t, filepath.Join(dir, paths.LogFileName), LogFilePath())
	assert.FileExists(t, filepath.Join(dir, paths.LogFileName))
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("render")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"render"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "generate")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"operation":"generate"`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("cargo", []string{"build"})

	assert.Contains(t, buf.String(), "cargo")
	assert.Contains(t, buf.String(), "build")
	assert.Contains(t, buf.String(), "Executing command")
}
