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

type listParams struct {
	commonParams
}

func listCommand() *cli.Command {
	var params listParams
	return &cli.Command{
		Name:    "list",
		Summary: "List the sessions in the store",
		Usage:   "fieldline list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("list takes no arguments, got %d", len(args))
			}

			env, err := setup(params.commonParams, "list")
			if err != nil {
				return err
			}

			entries, err := env.store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("No sessions in %s\n", faintStyle.Render(env.store.Root()))
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("NAME"),
				headerStyle.Render("UPDATED"),
				headerStyle.Render("ACTIONS"),
				headerStyle.Render("SEALED"))
			for _, entry := range entries {
				sealed := faintStyle.Render("-")
				if entry.Sealed {
					sealed = sealedStyle.Render("yes")
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
					nameStyle.Render(entry.Name),
					entry.Updated.Format("2006-01-02 15:04"),
					entry.Actions,
					sealed)
			}
			return tw.Flush()
		},
	}
}
