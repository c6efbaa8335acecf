package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/beltram/zr/cmd/zr"
	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/ui"
)

func main() {
	if ui.DetectFormat(os.Stderr) == ui.FormatText {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	errorStyle := ui.ErrorStyle

	rootCmd, err := zr.NewRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		if errors.IsErrorCode(err, errors.ErrAborted) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
