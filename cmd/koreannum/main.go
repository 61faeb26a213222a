package main

import (
	"os"

	"github.com/dmitrymomot/koreannum/cmd/koreannum/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
