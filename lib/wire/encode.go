// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"math"
)

// MaxPayload is the largest payload one record can carry: the length
// prefix is 2 bytes, unsigned.
const MaxPayload = math.MaxUint16

// appendHeader appends a record header. The caller has already
// verified length <= MaxPayload.
func appendHeader(buf []byte, tag Tag, length int) []byte {
	return append(buf, byte(tag), byte(length>>8), byte(length))
}

// AppendString appends a string record. Returns ErrLengthOverflow if
// the UTF-8 byte length of s does not fit the length prefix.
func AppendString(buf []byte, s string) ([]byte, error) {
	if len(s) > MaxPayload {
		return nil, fmt.Errorf("string of %d bytes: %w", len(s), ErrLengthOverflow)
	}
	buf = appendHeader(buf, TagString, len(s))
	return append(buf, s...), nil
}

// AppendU128 appends a 128-bit integer record: 16 bytes, big-endian.
func AppendU128(buf []byte, v U128) []byte {
	buf = appendHeader(buf, TagU128, 16)
	b := v.Bytes()
	return append(buf, b[:]...)
}

// AppendByte appends a single-byte record.
func AppendByte(buf []byte, v byte) []byte {
	buf = appendHeader(buf, TagByte, 1)
	return append(buf, v)
}

// AppendBool appends a boolean record: one byte, 0 or 1.
func AppendBool(buf []byte, v bool) []byte {
	buf = appendHeader(buf, TagBool, 1)
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

// AppendDiscriminant appends a closed-enumeration record: one byte
// carrying the variant's stable discriminant. The domain layer owns
// the mapping between variants and bytes; this function only frames
// the byte under the given tag.
func AppendDiscriminant(buf []byte, tag Tag, discriminant byte) []byte {
	buf = appendHeader(buf, tag, 1)
	return append(buf, discriminant)
}

// AppendComposite appends a composite record: the payload is the
// already-encoded concatenation of the composite's own fields,
// produced by its encode routine. Returns ErrLengthOverflow if the
// payload does not fit the length prefix.
func AppendComposite(buf []byte, tag Tag, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%s payload of %d bytes: %w", tag, len(payload), ErrLengthOverflow)
	}
	buf = appendHeader(buf, tag, len(payload))
	return append(buf, payload...), nil
}
