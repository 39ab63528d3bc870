// Package main is the entry point for the foam CLI.
//
// Usage:
//
//	foam [flags] <command> [subcommand] [args]
//
// Commands:
//
//	byte-stream  - Benchmark the bounded byte stream
//	config       - Benchmark profile management
//	version      - Show version information
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/haivivi/foam/cmd/foam/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
