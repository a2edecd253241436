// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/fieldline-io/fieldline/cmd/fieldline/cli"
	"github.com/fieldline-io/fieldline/lib/record"
	"github.com/fieldline-io/fieldline/lib/sessionstore"
)

type loadParams struct {
	commonParams
	IdentityFile string `flag:"identity-file" desc:"file with age secret keys for sealed sessions"`
}

func loadCommand() *cli.Command {
	var params loadParams
	return &cli.Command{
		Name:    "load",
		Summary: "Load a session and print its contents",
		Usage:   "fieldline load <name> [flags]",
		Description: `Load a session from the store, verifying its integrity digest and
decoding the wrapped entity. Sealed sessions prompt for a passphrase
unless --identity-file provides age secret keys.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("load", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one session name, got %d arguments", len(args))
			}
			name := args[0]

			env, err := setup(params.commonParams, "load")
			if err != nil {
				return err
			}

			session, err := loadSession(env, name, params.IdentityFile)
			if err != nil {
				return err
			}

			actions, err := env.store.Actions(name)
			if err != nil {
				return err
			}

			printSession(name, session, len(actions))
			return nil
		},
	}
}

// loadSession reads a session, deferring the unsealer (and any
// passphrase prompt) until the store reports a sealed envelope.
func loadSession(env *environment, name, identityFile string) (*record.Session, error) {
	session, err := env.store.Load(name, nil)
	if !errors.Is(err, sessionstore.ErrSealed) {
		return session, err
	}

	unseal, err := unsealerFor(identityFile)
	if err != nil {
		return nil, err
	}
	return env.store.Load(name, unseal)
}

func printSession(name string, session *record.Session, actionCount int) {
	state := faintStyle.Render("inactive")
	if session.Entity.Active {
		state = activeStyle.Render("active")
	}
	fmt.Printf("%s\n", headerStyle.Render(nameStyle.Render(name)))
	fmt.Printf("  entity:  %s\n", session.Entity.Name)
	fmt.Printf("  tier:    %d\n", session.Entity.Tier)
	fmt.Printf("  state:   %s\n", state)
	fmt.Printf("  actions: %d\n", actionCount)
}
