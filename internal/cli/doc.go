// Package cli implements the psgrab command-line interface.
//
// The cli package provides the Cobra-based root command that wires the
// pipeline together: fetch the listing, extract problem statements,
// deduplicate by problem statement ID, and export to the requested formats.
// Flags take precedence over the config file and environment.
package cli
