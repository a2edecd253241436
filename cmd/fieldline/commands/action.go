// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/fieldline-io/fieldline/cmd/fieldline/cli"
	"github.com/fieldline-io/fieldline/lib/record"
)

type actionParams struct {
	commonParams
	Target string `flag:"target" desc:"target the action applies to"`
}

func actionCommand() *cli.Command {
	var params actionParams
	return &cli.Command{
		Name:    "action",
		Summary: "Record an action against a session",
		Usage:   "fieldline action <session> <kind> [flags]",
		Description: `Append an action record to a session's log. The kind is one of
touch, rename, archive, restore. Each action gets a random 128-bit
identifier and is written to the append-only log without rewriting
the session file.`,
		Examples: []cli.Example{
			{Command: "fieldline action build-7 touch"},
			{Command: "fieldline action build-7 rename --target build-8"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("action", &params)
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <session> <kind>, got %d arguments", len(args))
			}
			name, kindName := args[0], args[1]

			env, err := setup(params.commonParams, "action")
			if err != nil {
				return err
			}

			kind, err := record.ParseActionKind(kindName)
			if err != nil {
				return err
			}

			action, err := record.NewAction(kind, params.Target)
			if err != nil {
				return err
			}

			if err := env.store.AppendAction(name, &action); err != nil {
				return err
			}

			env.logger.Info("action recorded",
				"session", name,
				"kind", kind.String(),
				"id", action.ID.Hex())
			fmt.Printf("Recorded %s action %s\n", kind, faintStyle.Render(action.ID.Hex()))
			return nil
		},
	}
}
