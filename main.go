package main

import (
	"os"

	"github.com/innerlens/innerlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
