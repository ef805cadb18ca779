package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "0.1.0"

func main() {
	if err := newRootCmd(Version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
