package cli

// Package cli wires the vegascon command line: the root command opens the
// GUI, subcommands convert projects and list catalogs without a window.
