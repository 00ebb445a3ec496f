package main

import (
	"os"

	"github.com/X86-Point5/input-handler/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
