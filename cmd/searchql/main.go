// Package main is the entry point for the searchql CLI.
package main

import (
	"os"

	"github.com/searchql/validator/cmd/searchql/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
