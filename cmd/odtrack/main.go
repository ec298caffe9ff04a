package main

import (
	"os"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
