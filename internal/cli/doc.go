// Package cli wires together the Cobra command tree for the confstore binary.
//
// It defines the root command and all subcommands (get, set, unset, sections,
// show, export, import, config, version), binds flags, reads the tool
// settings, and returns deterministic exit codes for scripts.
package cli
