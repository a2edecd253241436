// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "errors"

// Decode and encode failures are sentinel errors so callers can match
// the failure class with errors.Is regardless of the wrapping context
// added along the way.
var (
	// ErrMissingTag: the buffer was exhausted before a tag byte.
	ErrMissingTag = errors.New("wire: missing field tag")

	// ErrMissingLength: fewer than 2 bytes remain for the length
	// prefix.
	ErrMissingLength = errors.New("wire: missing field length")

	// ErrTruncatedPayload: the declared length exceeds the bytes
	// remaining in the buffer, or a fixed-width payload has the wrong
	// size.
	ErrTruncatedPayload = errors.New("wire: truncated payload")

	// ErrInvalidFieldType: the tag present in the stream is not the
	// tag the caller's requested type expects, or is outside the
	// closed tag set entirely.
	ErrInvalidFieldType = errors.New("wire: invalid field type")

	// ErrInvalidDiscriminant: an enumeration payload byte does not
	// correspond to any variant of the closed set.
	ErrInvalidDiscriminant = errors.New("wire: invalid discriminant")

	// ErrInvalidEncoding: payload bytes are not valid UTF-8 where
	// text is expected.
	ErrInvalidEncoding = errors.New("wire: invalid text encoding")

	// ErrLengthOverflow: a payload would not fit the 2-byte length
	// prefix. Raised at encode time — never silent truncation.
	ErrLengthOverflow = errors.New("wire: payload exceeds length prefix capacity")

	// ErrDepthExceeded: composite nesting passed MaxDepth while
	// decoding. Bounds stack growth on malformed input.
	ErrDepthExceeded = errors.New("wire: nesting depth exceeded")

	// ErrTrailingBytes: a decode consumed a complete record but the
	// buffer still holds data.
	ErrTrailingBytes = errors.New("wire: trailing bytes after record")
)
