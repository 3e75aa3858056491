// Package main hosts the wordcounter CLI entrypoint and command graph.
//
// Running the binary without a subcommand starts the interactive menu. The
// analyze subcommand runs the same analysis once and prints the results, which
// suits scripts and pipelines. Configuration resolution and logger setup live
// here so the internal packages stay free of flag handling.
package main
