// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/fieldline-io/fieldline/cmd/fieldline/cli"
)

type actionsParams struct {
	commonParams
}

func actionsCommand() *cli.Command {
	var params actionsParams
	return &cli.Command{
		Name:    "actions",
		Summary: "List the actions recorded against a session",
		Usage:   "fieldline actions <session> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("actions", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one session name, got %d arguments", len(args))
			}
			name := args[0]

			env, err := setup(params.commonParams, "actions")
			if err != nil {
				return err
			}

			actions, err := env.store.Actions(name)
			if err != nil {
				return err
			}
			if len(actions) == 0 {
				fmt.Printf("No actions recorded for %s\n", nameStyle.Render(name))
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("KIND"),
				headerStyle.Render("TARGET"))
			for _, action := range actions {
				target := action.Target
				if target == "" {
					target = faintStyle.Render("-")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n",
					faintStyle.Render(action.ID.Hex()), action.Kind, target)
			}
			return tw.Flush()
		},
	}
}
