// Package main is the entry point for the fieldrules CLI.
package main

import (
	"os"

	"github.com/michaelolof/fieldrules/cmd/fieldrules/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(commands.ExitCode(err))
	}
}
