package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/beltram/zr/cmd/zr"
	"github.com/beltram/zr/internal/version"
)

func main() {
	rootCmd, err := zr.NewRootCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating commands: %v\n", err)
		os.Exit(1)
	}

	header := &doc.GenManHeader{
		Title:   "ZR",
		Section: "1",
		Source:  "zr " + version.Version,
		Manual:  "zr manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
