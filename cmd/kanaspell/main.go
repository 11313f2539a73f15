// Package main is the entry point for the kanaspell CLI.
package main

import (
	"os"

	"github.com/f3rmion/kanaspell/cmd/kanaspell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
