// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package record

import "github.com/fieldline-io/fieldline/lib/wire"

// Entity is the subject a session wraps. Tier and Active are carried
// on the wire after the name, in that order.
type Entity struct {
	Name   string
	Tier   byte
	Active bool
}

// NewEntity returns an entity with the given name and zero scalars.
func NewEntity(name string) Entity {
	return Entity{Name: name}
}

// entityFields is the entity's wire shape. Changing this list is a
// breaking format change.
var entityFields = []fieldDef[Entity]{
	{
		name: "name",
		append: func(buf []byte, e *Entity) ([]byte, error) {
			return wire.AppendString(buf, e.Name)
		},
		read: func(f wire.Field, e *Entity) (err error) {
			e.Name, err = f.Text()
			return err
		},
	},
	{
		name: "tier",
		append: func(buf []byte, e *Entity) ([]byte, error) {
			return wire.AppendByte(buf, e.Tier), nil
		},
		read: func(f wire.Field, e *Entity) (err error) {
			e.Tier, err = f.Byte()
			return err
		},
	},
	{
		name: "active",
		append: func(buf []byte, e *Entity) ([]byte, error) {
			return wire.AppendBool(buf, e.Active), nil
		},
		read: func(f wire.Field, e *Entity) (err error) {
			e.Active, err = f.Bool()
			return err
		},
	},
}

// Encode returns the entity's full wire record (outer tag included).
func (e *Entity) Encode() ([]byte, error) {
	return encodeRecord(e, wire.TagEntity, entityFields)
}

// DecodeEntity decodes a buffer holding exactly one entity record.
func DecodeEntity(data []byte) (*Entity, error) {
	return decodeRecord(data, wire.TagEntity, entityFields)
}
