package main

import (
	"os"

	"github.com/Nafish32/smartlibrary-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
