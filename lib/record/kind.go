// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"

	"github.com/fieldline-io/fieldline/lib/wire"
)

// ActionKind is the closed enumeration of things an action can do to
// a session. Each kind has a stable 1-byte wire discriminant — the
// values below are protocol constants.
type ActionKind uint8

const (
	// KindTouch marks the session as visited without other effect.
	KindTouch ActionKind = 0

	// KindRename records a change of the entity's display name.
	KindRename ActionKind = 1

	// KindArchive records the session being put away.
	KindArchive ActionKind = 2

	// KindRestore records an archived session being brought back.
	KindRestore ActionKind = 3
)

// String returns the kind's command-line name.
func (k ActionKind) String() string {
	switch k {
	case KindTouch:
		return "touch"
	case KindRename:
		return "rename"
	case KindArchive:
		return "archive"
	case KindRestore:
		return "restore"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ParseActionKind parses a command-line kind name.
func ParseActionKind(name string) (ActionKind, error) {
	switch name {
	case "touch":
		return KindTouch, nil
	case "rename":
		return KindRename, nil
	case "archive":
		return KindArchive, nil
	case "restore":
		return KindRestore, nil
	default:
		return 0, fmt.Errorf("unknown action kind %q (touch, rename, archive, restore)", name)
	}
}

// actionKindFromWire maps a wire discriminant byte to its variant.
// The match is exhaustive over the closed set: any other byte is a
// decode error, never a reinterpreted value.
func actionKindFromWire(discriminant byte) (ActionKind, error) {
	switch ActionKind(discriminant) {
	case KindTouch, KindRename, KindArchive, KindRestore:
		return ActionKind(discriminant), nil
	default:
		return 0, fmt.Errorf("action kind %d: %w", discriminant, wire.ErrInvalidDiscriminant)
	}
}
