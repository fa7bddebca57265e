package main

import (
	"os"

	"github.com/fleetbill-dev/fleetbill/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
