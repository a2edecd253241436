// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package record

import "github.com/fieldline-io/fieldline/lib/wire"

// Session wraps exactly one entity. Action history is kept outside
// the session record (the store's per-session action log), so saving
// a session never rewrites history.
type Session struct {
	Entity Entity
}

// NewSession returns a session wrapping entity.
func NewSession(entity Entity) Session {
	return Session{Entity: entity}
}

// sessionFields is the session's wire shape: a single nested entity.
var sessionFields = []fieldDef[Session]{
	{
		name: "entity",
		append: func(buf []byte, s *Session) ([]byte, error) {
			payload, err := appendFields(nil, &s.Entity, entityFields)
			if err != nil {
				return nil, err
			}
			return wire.AppendComposite(buf, wire.TagEntity, payload)
		},
		read: func(f wire.Field, s *Session) error {
			return readComposite(f, wire.TagEntity, &s.Entity, entityFields)
		},
	},
}

// Encode returns the session's full wire record (outer tag included).
func (s *Session) Encode() ([]byte, error) {
	return encodeRecord(s, wire.TagSession, sessionFields)
}

// DecodeSession decodes a buffer holding exactly one session record.
func DecodeSession(data []byte) (*Session, error) {
	return decodeRecord(data, wire.TagSession, sessionFields)
}
