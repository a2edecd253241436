// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import "github.com/charmbracelet/lipgloss"

// Output styles. Lipgloss falls back to plain text when stdout is not
// a terminal, so these are safe to use unconditionally.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sealedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)
