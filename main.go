package main

import (
	"os"

	"github.com/AttuneLearning/agent-workflow/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := cli.Execute(version, commit, date)
	cli.PrintError(os.Stderr, err)
	os.Exit(cli.ExitCode(err))
}
