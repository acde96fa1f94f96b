package main

import (
	"os"

	"github.com/debtplan/debt-planner/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
