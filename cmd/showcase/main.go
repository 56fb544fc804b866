package main

import (
	"os"

	"github.com/chille/showcase/cmd/showcase/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
