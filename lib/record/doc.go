// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

// Package record defines the fieldline composite records — Entity,
// Session, Action, and the ActionKind enumeration — and their
// encoding to and from the wire format in lib/wire.
//
// Each composite declares exactly one ordered field list (a slice of
// descriptors naming the field and holding its append and read
// functions). Both encoding and decoding walk that list, so the wire
// shape of a record is defined in a single place. The order is the
// schema: the format writes no field names or counts, and any change
// to a list is a breaking wire-format change.
//
// Decoding is fail-fast. The first field error aborts the record and
// propagates; there are no partial records and no recovery.
package record
