package main

import (
	"os"

	"github.com/go-drift/shade/cmd/shade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
