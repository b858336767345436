package main

import (
	"os"

	"github.com/galleypress/galley/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
