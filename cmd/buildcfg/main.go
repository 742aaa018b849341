// Package main provides the buildcfg CLI for resolving Android build configuration.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ochairo/buildcfg/internal/external-adapters/logging"
)

// Environment fallbacks for flags
const (
	envLogLevel       = "BUILDCFG_LOG_LEVEL"
	envSignPassphrase = "BUILDCFG_SIGN_PASSPHRASE"
)

// Exit codes
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitUsage)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "resolve":
		os.Exit(runResolve(ctx, os.Args[2:]))
	case "verify":
		os.Exit(runVerify(ctx, os.Args[2:]))
	case "variants":
		os.Exit(runVariants(ctx, os.Args[2:]))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(exitUsage)
	}
}

func printUsage() {
	fmt.Println(`buildcfg - Android build configuration resolver

Usage:
  buildcfg <command> [options]

Commands:
  resolve   Resolve local.properties into a build descriptor
  verify    Verify a descriptor's checksum and signature
  variants  List build variants and their fixed flags

Use "buildcfg <command> --help" for more information about a command.`)
}

// newLogger builds the stderr logger; flag value wins over the environment
func newLogger(level string, jsonOutput bool) (*logging.Logger, error) {
	if level == "" {
		level = os.Getenv(envLogLevel)
	}
	if jsonOutput {
		return logging.New(os.Stderr, level)
	}
	return logging.NewConsole(os.Stderr, strings.TrimSpace(level))
}
