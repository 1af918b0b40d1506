// Package main provides the machine-report command-line tool, which prints a
// one-shot table of the local machine's identity, network, CPU, memory, disk
// and login state.
package main

import (
	"fmt"
	"os"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2026-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "machine-report: %v\n", err)
		os.Exit(1)
	}
}
