// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the fieldline CLI command tree and holds
// the shared setup every command goes through: config loading, store
// opening, and logger construction.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fieldline-io/fieldline/cmd/fieldline/cli"
	"github.com/fieldline-io/fieldline/lib/config"
	"github.com/fieldline-io/fieldline/lib/sessionstore"
	"github.com/fieldline-io/fieldline/lib/version"
)

// Root builds the complete fieldline command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "fieldline",
		Description: `fieldline: persist session records in a compact binary format.

Sessions wrap an entity and live under a store directory as
tag-length-value encoded files with integrity-checked envelopes.
Actions against a session accumulate in an append-only log.`,
		Subcommands: []*cli.Command{
			newCommand(),
			loadCommand(),
			actionCommand(),
			actionsCommand(),
			listCommand(),
			inspectCommand(),
			removeCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func([]string) error {
					fmt.Printf("fieldline %s\n", version.Full())
					return nil
				},
			},
		},
	}
}

// commonParams are the flags shared by every store-touching command.
// Embedding keeps --config and --store uniform across the tree.
type commonParams struct {
	Config string `flag:"config" desc:"path to config file (or FIELDLINE_CONFIG)"`
	Store  string `flag:"store"  desc:"store directory (overrides config)"`
}

// environment is the shared state a command runs against.
type environment struct {
	cfg    *config.Config
	store  *sessionstore.Store
	logger *slog.Logger
}

// setup loads config, opens the store, and builds the command logger.
func setup(common commonParams, command string) (*environment, error) {
	cfg, err := config.Load(common.Config)
	if err != nil {
		return nil, err
	}

	root := common.Store
	if root == "" {
		root = cfg.Store.Root
	}
	if root == "" {
		root, err = sessionstore.DefaultRoot()
		if err != nil {
			return nil, err
		}
	}

	store, err := sessionstore.Open(root)
	if err != nil {
		return nil, err
	}

	logger := cli.NewCommandLogger(cli.ParseLevel(cfg.Log.Level)).With("command", command)
	return &environment{cfg: cfg, store: store, logger: logger}, nil
}

// promptPassphrase reads a passphrase from the terminal without echo.
// With confirm set it asks twice and requires a match (used when
// sealing; a typo would lock the session forever).
func promptPassphrase(confirm bool) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("passphrase required but stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, "Passphrase: ")
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	if len(first) == 0 {
		return "", fmt.Errorf("empty passphrase")
	}
	if !confirm {
		return string(first), nil
	}

	fmt.Fprint(os.Stderr, "Confirm passphrase: ")
	second, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase confirmation: %w", err)
	}
	if string(first) != string(second) {
		return "", fmt.Errorf("passphrases do not match")
	}
	return string(first), nil
}

// readIdentityFile loads age secret keys (AGE-SECRET-KEY-1...) from a
// file, one per line, ignoring blanks and # comments.
func readIdentityFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading identity file: %w", err)
	}
	var keys []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("identity file %s contains no keys", path)
	}
	return keys, nil
}

// unsealerFor builds the Unsealer for reading a possibly-sealed
// session: an identity file when given, otherwise a passphrase prompt
// — but only once the store has actually reported a sealed envelope.
func unsealerFor(identityFile string) (sessionstore.Unsealer, error) {
	if identityFile != "" {
		keys, err := readIdentityFile(identityFile)
		if err != nil {
			return nil, err
		}
		return sessionstore.IdentityUnsealer(keys)
	}
	passphrase, err := promptPassphrase(false)
	if err != nil {
		return nil, err
	}
	return sessionstore.PassphraseUnsealer(passphrase)
}
