// ABOUTME: Command line flag parsing for ger-go.
// ABOUTME: Separated from main for testability.

package main

import "flag"

// cliArgs holds parsed command-line arguments.
type cliArgs struct {
	verbose bool
	version bool
}

// parseFlags parses command line arguments into cliArgs.
func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging to ~/.ger-go/debug.log")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()

	return args
}
