package main

import (
	"os"

	"github.com/vizprobe/vizprobe/cmd/vizprobe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
