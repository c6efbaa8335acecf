package ui

import (
	"os"

	"github.com/pterm/pterm"
)

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// PromptConfirmer asks on the terminal, defaulting to no
type PromptConfirmer struct{}

func (PromptConfirmer) Confirm(question string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(question)
}

// StaticConfirmer always gives the same answer
type StaticConfirmer bool

func (s StaticConfirmer) Confirm(string) (bool, error) {
	return bool(s), nil
}

// NewConfirmer prompts when in is a terminal and refuses otherwise
func NewConfirmer(in *os.File) Confirmer {
	if IsTerminal(in) {
		return PromptConfirmer{}
	}
	return StaticConfirmer(false)
}
