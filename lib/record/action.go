// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"crypto/rand"
	"fmt"

	"github.com/fieldline-io/fieldline/lib/wire"
)

// Action is one recorded operation against a session. Actions are
// stored as a concatenated stream of records in the session's action
// log; each record is self-delimiting, so the log needs no framing of
// its own.
type Action struct {
	// ID is a random 128-bit identifier assigned at creation.
	ID wire.U128

	// Kind says what the action did.
	Kind ActionKind

	// Target is the kind-specific argument (the new name for a
	// rename, free text for a touch).
	Target string
}

// NewAction returns an action with a freshly drawn random ID.
func NewAction(kind ActionKind, target string) (Action, error) {
	var raw [16]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return Action{}, fmt.Errorf("drawing action id: %w", err)
	}
	return Action{ID: wire.U128FromBytes(raw), Kind: kind, Target: target}, nil
}

// actionFields is the action's wire shape. Changing this list is a
// breaking format change.
var actionFields = []fieldDef[Action]{
	{
		name: "id",
		append: func(buf []byte, a *Action) ([]byte, error) {
			return wire.AppendU128(buf, a.ID), nil
		},
		read: func(f wire.Field, a *Action) (err error) {
			a.ID, err = f.U128()
			return err
		},
	},
	{
		name: "kind",
		append: func(buf []byte, a *Action) ([]byte, error) {
			return wire.AppendDiscriminant(buf, wire.TagActionKind, byte(a.Kind)), nil
		},
		read: func(f wire.Field, a *Action) error {
			discriminant, err := f.Discriminant(wire.TagActionKind)
			if err != nil {
				return err
			}
			a.Kind, err = actionKindFromWire(discriminant)
			return err
		},
	},
	{
		name: "target",
		append: func(buf []byte, a *Action) ([]byte, error) {
			return wire.AppendString(buf, a.Target)
		},
		read: func(f wire.Field, a *Action) (err error) {
			a.Target, err = f.Text()
			return err
		},
	},
}

// Encode returns the action's full wire record (outer tag included).
func (a *Action) Encode() ([]byte, error) {
	return encodeRecord(a, wire.TagAction, actionFields)
}

// DecodeAction decodes a buffer holding exactly one action record.
func DecodeAction(data []byte) (*Action, error) {
	return decodeRecord(data, wire.TagAction, actionFields)
}

// DecodeActionStream decodes a concatenation of action records — the
// store's action log format — until the buffer is exhausted. The
// first malformed record fails the whole read.
func DecodeActionStream(data []byte) ([]Action, error) {
	var actions []Action
	reader := wire.NewReader(data)
	for reader.Remaining() > 0 {
		field, err := reader.Next()
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", len(actions), err)
		}
		var action Action
		if err := readComposite(field, wire.TagAction, &action, actionFields); err != nil {
			return nil, fmt.Errorf("action %d: %w", len(actions), err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}
