// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/fieldline-io/fieldline/cmd/fieldline/cli"
)

type removeParams struct {
	commonParams
}

func removeCommand() *cli.Command {
	var params removeParams
	return &cli.Command{
		Name:    "remove",
		Summary: "Delete a session, its action log, and its index entry",
		Usage:   "fieldline remove <name> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("remove", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one session name, got %d arguments", len(args))
			}
			name := args[0]

			env, err := setup(params.commonParams, "remove")
			if err != nil {
				return err
			}

			if err := env.store.Remove(name); err != nil {
				return err
			}

			env.logger.Info("session removed", "name", name)
			fmt.Printf("Removed session %s\n", nameStyle.Render(name))
			return nil
		},
	}
}
