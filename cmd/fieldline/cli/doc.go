// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the fieldline
// binary.
//
// The central type is [Command]: a named subcommand with optional
// nested subcommands, a [pflag.FlagSet] factory, and a Run function.
// The tree is assembled in cmd/fieldline/commands and dispatched via
// [Command.Execute], which handles flag parsing, routing, and help
// output. Flag sets are normally built from tagged param structs with
// [FlagsFromParams].
//
// Unknown subcommands and flags get a closest-match suggestion based
// on Levenshtein edit distance (threshold 3).
package cli
