// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "acb", 2},
		{"inspect", "insepct", 2},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "new"}, {Name: "load"}, {Name: "inspect"}}

	if got := suggestCommand("insepct", commands); got != "inspect" {
		t.Errorf("suggestCommand(insepct) = %q, want inspect", got)
	}
	if got := suggestCommand("laod", commands); got != "load" {
		t.Errorf("suggestCommand(laod) = %q, want load", got)
	}
	// Nothing within the threshold.
	if got := suggestCommand("completely-different", commands); got != "" {
		t.Errorf("suggestCommand(far) = %q, want empty", got)
	}
}
