package main

import (
	"os"

	"github.com/idmagic/comnum/cmd/comnum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.ReportError(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
