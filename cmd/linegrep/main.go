// Package main is the entry point for the linegrep tool.
// linegrep prints every line of a file that contains a query string.
// Setting the IGNORE_CASE environment variable (to any value, even empty)
// switches to case-insensitive matching.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/f4ah6o/linegrep-go/internal/config"
	"github.com/f4ah6o/linegrep-go/internal/runner"
)

// colorError tints diagnostics on stderr; matched lines on stdout stay bare.
var colorError = color.New(color.FgRed, color.Bold)

func main() {
	cfg, err := config.Build(os.Args, os.LookupEnv)
	if err != nil {
		colorError.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Usage: linegrep <query> <file_path>\n")
		os.Exit(2)
	}

	if err := runner.New(os.Stdout).Run(cfg); err != nil {
		colorError.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
