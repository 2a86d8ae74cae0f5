package main

import (
	"os"

	"github.com/gqlweave/gqlweave/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
