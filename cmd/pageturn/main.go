package main

import (
	"os"

	"github.com/gogpu/pageturn/cmd/pageturn/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
