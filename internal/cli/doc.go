// Package cli defines the Cobra command tree for the uomsys CLI. Each file
// in this package registers one top-level command (list, get, providers, etc.)
// with the root command. Commands resolve systems through the provider catalog
// assembled in root.go and only handle flag parsing and output formatting.
package cli
