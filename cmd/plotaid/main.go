// Package main provides the entry point for the plotaid CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/Sumatoshi-tech/plotaid/cmd/plotaid/commands"
	"github.com/Sumatoshi-tech/plotaid/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
