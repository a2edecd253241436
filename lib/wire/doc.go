// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire implements the fieldline tag-length-value encoding.
//
// Every field on the wire is one record:
//
//	tag(1) | length(2, big-endian) | payload(length)
//
// The tag identifies the field's type ([Tag], a closed set), the
// length bounds the payload at 65535 bytes, and composite payloads are
// simply the concatenation of their own fields' records in declared
// order. Nothing else is written: no field count, no names, no version.
// The schema is the sequence of typed reads the caller performs.
//
// Encoding is a family of Append functions that extend a caller-owned
// buffer. Decoding is a [Reader], an advance-only cursor over an
// immutable buffer: [Reader.Next] frames one record and returns a
// [Field], whose typed accessors (Text, Byte, Bool, U128, Discriminant,
// Composite) perform the schema-on-read check — each accessor accepts
// exactly one tag and rejects every other with [ErrInvalidFieldType].
//
// The package is purely functional over the bytes handed to it: no
// retained state, no I/O, no logging. All failures are sentinel errors
// matched with errors.Is.
package wire
