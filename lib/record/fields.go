// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"

	"github.com/fieldline-io/fieldline/lib/wire"
)

// fieldDef describes one field of a composite record: its name (for
// error context only — names are never written to the wire) and the
// append/read functions that move it between the struct and the
// encoding. The slice a fieldDef lives in fixes its wire position.
type fieldDef[T any] struct {
	name   string
	append func(buf []byte, v *T) ([]byte, error)
	read   func(f wire.Field, v *T) error
}

// appendFields encodes v's fields in declared order into buf.
func appendFields[T any](buf []byte, v *T, defs []fieldDef[T]) ([]byte, error) {
	for _, def := range defs {
		var err error
		buf, err = def.append(buf, v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", def.name, err)
		}
	}
	return buf, nil
}

// readFields decodes v's fields in declared order from reader. The
// payload must contain exactly the declared fields — leftover bytes
// mean a shape mismatch and fail with wire.ErrTrailingBytes.
func readFields[T any](reader *wire.Reader, v *T, defs []fieldDef[T]) error {
	for _, def := range defs {
		field, err := reader.Next()
		if err != nil {
			return fmt.Errorf("field %s: %w", def.name, err)
		}
		if err := def.read(field, v); err != nil {
			return fmt.Errorf("field %s: %w", def.name, err)
		}
	}
	if remaining := reader.Remaining(); remaining > 0 {
		return fmt.Errorf("%d bytes: %w", remaining, wire.ErrTrailingBytes)
	}
	return nil
}

// encodeRecord produces the full outer wire record for v: the declared
// fields encoded in order, wrapped under tag with a length prefix.
func encodeRecord[T any](v *T, tag wire.Tag, defs []fieldDef[T]) ([]byte, error) {
	payload, err := appendFields(nil, v, defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	return wire.AppendComposite(nil, tag, payload)
}

// decodeRecord decodes one full outer wire record from data. The
// buffer must contain exactly one record of the expected tag.
func decodeRecord[T any](data []byte, tag wire.Tag, defs []fieldDef[T]) (*T, error) {
	reader := wire.NewReader(data)
	field, err := reader.Next()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	sub, err := field.Composite(tag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	var v T
	if err := readFields(sub, &v, defs); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if remaining := reader.Remaining(); remaining > 0 {
		return nil, fmt.Errorf("%s: %d bytes: %w", tag, remaining, wire.ErrTrailingBytes)
	}
	return &v, nil
}

// readComposite decodes a nested composite field in place: it checks
// the tag, opens the payload-scoped sub-reader, and walks the nested
// record's own field list.
func readComposite[T any](f wire.Field, tag wire.Tag, v *T, defs []fieldDef[T]) error {
	sub, err := f.Composite(tag)
	if err != nil {
		return err
	}
	return readFields(sub, v, defs)
}
