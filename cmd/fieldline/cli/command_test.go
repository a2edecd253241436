// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesSubcommand(t *testing.T) {
	var ran []string
	root := &Command{
		Name: "fieldline",
		Subcommands: []*Command{
			{Name: "new", Run: func(args []string) error {
				ran = args
				return nil
			}},
		},
	}

	if err := root.Execute([]string{"new", "alice"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ran) != 1 || ran[0] != "alice" {
		t.Errorf("subcommand args = %v, want [alice]", ran)
	}
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "fieldline",
		Subcommands: []*Command{
			{Name: "inspect", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"insepct"})
	if err == nil {
		t.Fatal("Execute accepted a typo")
	}
	if !strings.Contains(err.Error(), `did you mean "inspect"`) {
		t.Errorf("error lacks suggestion: %v", err)
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	var sealed bool
	var positional []string
	command := &Command{
		Name: "new",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("new", pflag.ContinueOnError)
			flagSet.BoolVar(&sealed, "seal", false, "")
			return flagSet
		},
		Run: func(args []string) error {
			positional = args
			return nil
		},
	}

	if err := command.Execute([]string{"--seal", "alice"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !sealed {
		t.Error("--seal not parsed")
	}
	if len(positional) != 1 || positional[0] != "alice" {
		t.Errorf("positional args = %v, want [alice]", positional)
	}
}

func TestExecuteUnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "new",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("new", pflag.ContinueOnError)
			flagSet.Bool("seal", false, "")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}

	err := command.Execute([]string{"--seel"})
	if err == nil {
		t.Fatal("Execute accepted an unknown flag")
	}
	if !strings.Contains(err.Error(), "--seal") {
		t.Errorf("error lacks flag suggestion: %v", err)
	}
}

func TestExecuteNoSubcommandShowsHelp(t *testing.T) {
	root := &Command{
		Name:        "fieldline",
		Subcommands: []*Command{{Name: "list", Summary: "List sessions"}},
	}
	if err := root.Execute(nil); err == nil {
		t.Error("Execute without a subcommand succeeded")
	}
}

func TestPrintHelpListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:        "fieldline",
		Description: "Persist sessions.",
		Subcommands: []*Command{{Name: "new", Summary: "Create a session"}},
		Examples: []Example{
			{Description: "Create a session named alice", Command: "fieldline new alice"},
		},
	}

	var out strings.Builder
	root.PrintHelp(&out)
	help := out.String()

	for _, want := range []string{"Persist sessions.", "new", "Create a session", "fieldline new alice"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestHelpFlagIsNotAnError(t *testing.T) {
	root := &Command{Name: "fieldline", Subcommands: []*Command{{Name: "list"}}}
	for _, flag := range []string{"-h", "--help", "help"} {
		if err := root.Execute([]string{flag}); err != nil {
			t.Errorf("Execute(%s) = %v, want nil", flag, err)
		}
	}
}
