package main

import (
	"os"

	"solidguide/internal/cli"
)

// main stays a thin boundary: every behavior lives in cli.Run so tests can
// drive the tool end to end without spawning a process.
func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
