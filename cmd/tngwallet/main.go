package main

import (
	"os"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
