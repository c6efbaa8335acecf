package main

import (
	"fmt"
	"os"

	"github.com/beltram/zr/cmd/zr"
	"github.com/beltram/zr/pkg/shell"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(1)
	}

	sh, err := shell.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	rootCmd, err := zr.NewRootCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating commands: %v\n", err)
		os.Exit(1)
	}

	if err := zr.GenCompletion(rootCmd, sh, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", sh, err)
		os.Exit(1)
	}
}
