package main

import (
	"os"

	"github.com/spendo-dev/spendo/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
