// Package main is the entry point for the mcp-server-digitalocean CLI.
package main

import (
	"os"

	"github.com/thoreinstein/mcp-server-digitalocean/cmd/mcp-server-digitalocean/commands"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
