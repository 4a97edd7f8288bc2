package main

import (
	"os"

	"github.com/Aashish23092/statement-top-amounts/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
