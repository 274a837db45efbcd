package main

import (
	"os"

	"github.com/hostelfix/dupcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
