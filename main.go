package main

import (
	"os"

	"github.com/neuroscanhq/neuroscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
