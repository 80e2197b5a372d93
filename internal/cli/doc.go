// Package cli parses command-line arguments into an application Config,
// producing usage text and exit-code-carrying errors for the entrypoint.
package cli
