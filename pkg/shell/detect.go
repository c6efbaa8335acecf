// Package shell detects the user's shell and runs post-generation commands,
// either through that shell or through an embedded POSIX interpreter.
package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beltram/zr/pkg/errors"
)

// Shell is a supported shell
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	PowerShell Shell = "powershell"
)

var supported = map[Shell]bool{
	Bash:       true,
	Zsh:        true,
	Fish:       true,
	PowerShell: true,
}

// Supported returns the supported shells
func Supported() []Shell {
	return []Shell{Bash, Zsh, Fish, PowerShell}
}

// Detect returns the current shell. Version variables set by the shells win
// over $SHELL.
func Detect() (Shell, error) {
	if os.Getenv("FISH_VERSION") != "" {
		return Fish, nil
	}
	if os.Getenv("ZSH_VERSION") != "" {
		return Zsh, nil
	}
	if os.Getenv("BASH_VERSION") != "" {
		return Bash, nil
	}
	if os.Getenv("PSModulePath") != "" && os.Getenv("SHELL") == "" {
		return PowerShell, nil
	}

	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return "", errors.New(errors.ErrNotFound, "could not detect current shell: $SHELL is not set")
	}
	return Parse(filepath.Base(shellPath))
}

// Parse validates a user provided shell name
func Parse(s string) (Shell, error) {
	name := strings.ToLower(strings.TrimSuffix(s, ".exe"))
	if name == "pwsh" {
		name = string(PowerShell)
	}
	sh := Shell(name)
	if !supported[sh] {
		return "", errors.Newf(errors.ErrInvalidValue, "shell %q is not supported (supported: bash, zsh, fish, powershell)", s)
	}
	return sh, nil
}

// commandArgs returns the argv running commandLine through sh
func (sh Shell) commandArgs(commandLine string) []string {
	if sh == PowerShell {
		return []string{"pwsh", "-NoProfile", "-Command", commandLine}
	}
	return []string{string(sh), "-c", commandLine}
}
