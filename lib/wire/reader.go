// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"unicode/utf8"
)

// MaxDepth is the deepest composite nesting Composite will open.
// Well-formed fieldline data nests two levels (session → entity); the
// cap exists to bound recursion on malformed or hostile input.
const MaxDepth = 32

// Reader is an advance-only cursor over an immutable buffer. It holds
// a view of the remaining bytes, never a copy, and is valid only for
// the duration of the decode call that created it.
//
// Each call to Next frames exactly one record. Callers pull fields off
// strictly in the declared order of the composite they are decoding;
// the typed accessor used at each position is the schema.
type Reader struct {
	buf   []byte
	depth int
}

// NewReader returns a Reader positioned at the start of buf. The
// buffer must be complete — the reader performs no I/O and cannot wait
// for more data.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf)
}

// Next frames the next record: tag byte, length prefix, payload slice.
// The cursor advances past the record only on success. The returned
// Field borrows the reader's underlying buffer.
func (r *Reader) Next() (Field, error) {
	if len(r.buf) == 0 {
		return Field{}, ErrMissingTag
	}
	tag := Tag(r.buf[0])
	if !tag.valid() {
		return Field{}, fmt.Errorf("tag %d: %w", r.buf[0], ErrInvalidFieldType)
	}

	if len(r.buf) < 1+2 {
		return Field{}, fmt.Errorf("%s: %w", tag, ErrMissingLength)
	}
	length := int(r.buf[1])<<8 | int(r.buf[2])

	rest := r.buf[3:]
	if length > len(rest) {
		return Field{}, fmt.Errorf("%s: declared %d bytes, %d remain: %w",
			tag, length, len(rest), ErrTruncatedPayload)
	}

	r.buf = rest[length:]
	return Field{tag: tag, payload: rest[:length], depth: r.depth}, nil
}

// Field is one framed record: a tag and its payload view. Fields are
// ephemeral — produced by Next, consumed immediately by exactly one
// typed accessor, never retained past the decode call.
type Field struct {
	tag     Tag
	payload []byte
	depth   int
}

// Tag returns the wire type present in the stream.
func (f Field) Tag() Tag {
	return f.tag
}

// expect is the schema-on-read check shared by every accessor: the tag
// actually present must be the tag the requested type decodes from.
func (f Field) expect(want Tag) error {
	if f.tag != want {
		return fmt.Errorf("have %s, want %s: %w", f.tag, want, ErrInvalidFieldType)
	}
	return nil
}

// Text converts the field to a string. The payload must be valid
// UTF-8.
func (f Field) Text() (string, error) {
	if err := f.expect(TagString); err != nil {
		return "", err
	}
	if !utf8.Valid(f.payload) {
		return "", fmt.Errorf("string payload: %w", ErrInvalidEncoding)
	}
	return string(f.payload), nil
}

// U128 converts the field to a 128-bit integer. The payload must be
// exactly 16 bytes.
func (f Field) U128() (U128, error) {
	if err := f.expect(TagU128); err != nil {
		return U128{}, err
	}
	if len(f.payload) != 16 {
		return U128{}, fmt.Errorf("u128 payload is %d bytes, want 16: %w",
			len(f.payload), ErrTruncatedPayload)
	}
	var b [16]byte
	copy(b[:], f.payload)
	return U128FromBytes(b), nil
}

// Byte converts the field to a single byte.
func (f Field) Byte() (byte, error) {
	if err := f.expect(TagByte); err != nil {
		return 0, err
	}
	if len(f.payload) == 0 {
		return 0, fmt.Errorf("byte payload is empty: %w", ErrTruncatedPayload)
	}
	return f.payload[0], nil
}

// Bool converts the field to a boolean. Any nonzero payload byte is
// true, matching the encoder's 0/1 convention leniently on read.
func (f Field) Bool() (bool, error) {
	if err := f.expect(TagBool); err != nil {
		return false, err
	}
	if len(f.payload) == 0 {
		return false, fmt.Errorf("bool payload is empty: %w", ErrTruncatedPayload)
	}
	return f.payload[0] != 0, nil
}

// Discriminant returns the raw variant byte of a closed-enumeration
// field carried under tag. The caller owns the enumeration and must
// validate the byte against its closed set, rejecting unknown values
// with ErrInvalidDiscriminant — a raw reinterpretation is never
// acceptable.
func (f Field) Discriminant(tag Tag) (byte, error) {
	if err := f.expect(tag); err != nil {
		return 0, err
	}
	if len(f.payload) == 0 {
		return 0, fmt.Errorf("%s payload is empty: %w", tag, ErrTruncatedPayload)
	}
	return f.payload[0], nil
}

// Composite opens a fresh Reader scoped to exactly this field's
// payload, after checking that the tag present is the composite tag
// the caller expects. The sub-reader inherits the nesting depth;
// opening more than MaxDepth levels fails with ErrDepthExceeded.
func (f Field) Composite(tag Tag) (*Reader, error) {
	if !tag.composite() {
		return nil, fmt.Errorf("%s is not a composite tag: %w", tag, ErrInvalidFieldType)
	}
	if err := f.expect(tag); err != nil {
		return nil, err
	}
	if f.depth+1 > MaxDepth {
		return nil, fmt.Errorf("%s at depth %d: %w", tag, f.depth+1, ErrDepthExceeded)
	}
	return &Reader{buf: f.payload, depth: f.depth + 1}, nil
}
