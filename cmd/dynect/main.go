package main

import (
	"os"

	"github.com/fivetwenty-io/dynect/cmd/dynect/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(version, commit, date)

	err := rootCmd.Execute()
	if err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
