// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/fieldline-io/fieldline/cmd/fieldline/cli"
	"github.com/fieldline-io/fieldline/lib/sessionstore"
	"github.com/fieldline-io/fieldline/lib/wire"
)

type inspectParams struct {
	commonParams
	Hex          bool   `flag:"hex"           desc:"read hex-encoded wire bytes from stdin instead of the store"`
	IdentityFile string `flag:"identity-file" desc:"file with age secret keys for sealed sessions"`
}

func inspectCommand() *cli.Command {
	var params inspectParams
	return &cli.Command{
		Name:    "inspect",
		Summary: "Dump a session's wire structure field by field",
		Usage:   "fieldline inspect <name> [flags]",
		Description: `Walk the raw encoding of a stored session and print every field
with its tag, length, and decoded value. Malformed regions are
annotated in place rather than aborting the dump, so the output shows
how far a damaged record remains readable.

With --hex, wire bytes are read as hex from stdin and no store access
happens; this is the loop for examining records produced elsewhere.`,
		Examples: []cli.Example{
			{Command: "fieldline inspect build-7"},
			{Description: "Inspect raw bytes from another tool", Command: "echo 0800... | fieldline inspect --hex"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("inspect", &params)
		},
		Run: func(args []string) error {
			var data []byte

			if params.Hex {
				if len(args) != 0 {
					return fmt.Errorf("--hex reads stdin and takes no arguments")
				}
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				data, err = hex.DecodeString(strings.TrimSpace(string(raw)))
				if err != nil {
					return fmt.Errorf("decoding hex input: %w", err)
				}
			} else {
				if len(args) != 1 {
					return fmt.Errorf("expected exactly one session name, got %d arguments", len(args))
				}
				env, err := setup(params.commonParams, "inspect")
				if err != nil {
					return err
				}
				data, err = loadRawSession(env, args[0], params.IdentityFile)
				if err != nil {
					return err
				}
			}

			dump, err := wire.Diagnose(data)
			fmt.Print(dump)
			if err != nil {
				// The dump already annotates the malformed region.
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// loadRawSession mirrors loadSession but keeps the decoded envelope
// payload as raw wire bytes.
func loadRawSession(env *environment, name, identityFile string) ([]byte, error) {
	data, err := env.store.LoadRaw(name, nil)
	if !errors.Is(err, sessionstore.ErrSealed) {
		return data, err
	}

	unseal, err := unsealerFor(identityFile)
	if err != nil {
		return nil, err
	}
	return env.store.LoadRaw(name, unseal)
}
