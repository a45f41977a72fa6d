// Package main is the entry point for the checks runner binary.
package main

import (
	"fmt"
	"os"

	"github.com/godouble/godouble/internal/checks"
)

func main() {
	if err := newRootCmd(os.Stdout, checks.All()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
