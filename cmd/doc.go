// Package cmd implements the command-line interface of dTree. It provides a small
// command hierarchy around the tree library:
//
//   - shell: An interactive shell for a hierarchical key-value store on an in-memory tree
//   - version: Prints the version
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See dtree -help for a list of all commands.
package cmd
