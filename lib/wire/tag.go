// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "fmt"

// Tag identifies a field's wire type. Tags are stored as the first
// byte of every record. These values are protocol constants — changing
// them breaks every stored session file.
type Tag uint8

const (
	// TagString is a UTF-8 string payload.
	TagString Tag = 1

	// TagU128 is a 128-bit unsigned integer, 16 bytes big-endian.
	TagU128 Tag = 2

	// TagByte is a single byte, verbatim.
	TagByte Tag = 3

	// TagBool is a single byte, 0 or 1.
	TagBool Tag = 4

	// TagAction is a composite action record.
	TagAction Tag = 5

	// TagActionKind is a closed-enumeration discriminant byte.
	TagActionKind Tag = 6

	// TagEntity is a composite entity record.
	TagEntity Tag = 7

	// TagSession is a composite session record.
	TagSession Tag = 8
)

// String returns the human-readable name of a tag.
func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagU128:
		return "u128"
	case TagByte:
		return "byte"
	case TagBool:
		return "bool"
	case TagAction:
		return "action"
	case TagActionKind:
		return "action-kind"
	case TagEntity:
		return "entity"
	case TagSession:
		return "session"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// valid reports whether t is a member of the closed tag set. Unknown
// tags are a hard decode error — the set is versionless.
func (t Tag) valid() bool {
	return t >= TagString && t <= TagSession
}

// composite reports whether t frames a nested record rather than a
// scalar payload.
func (t Tag) composite() bool {
	return t == TagAction || t == TagEntity || t == TagSession
}
