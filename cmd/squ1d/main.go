// Command squ1d is a minimal browser shell: a software-rasterized chrome around
// pages drawn by an external renderer.
package main

import (
	"fmt"
	"os"
)

// Build information set via ldflags.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
