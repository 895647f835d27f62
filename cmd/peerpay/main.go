package main

import (
	"os"

	"github.com/amirasaad/peerpay/cmd/peerpay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
