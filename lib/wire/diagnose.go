// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Diagnose renders the TLV structure of data as indented text, one
// line per record, recursing into composite payloads. It needs no
// domain schema — only the tag set — which makes it usable on any
// buffer, including corrupt ones: the first framing error is reported
// in place and rendering stops.
//
// Scalar payloads are shown as values (strings quoted, integers in
// decimal, discriminants and bytes in both decimal and hex). This is
// the engine behind "fieldline inspect".
func Diagnose(data []byte) (string, error) {
	var b strings.Builder
	if err := diagnoseInto(&b, data, 0); err != nil {
		return b.String(), err
	}
	return b.String(), nil
}

func diagnoseInto(b *strings.Builder, data []byte, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("diagnose: %w", ErrDepthExceeded)
	}
	indent := strings.Repeat("  ", depth)

	reader := NewReader(data)
	for reader.Remaining() > 0 {
		field, err := reader.Next()
		if err != nil {
			fmt.Fprintf(b, "%s!! %v\n", indent, err)
			return err
		}

		switch field.tag {
		case TagString:
			if utf8.Valid(field.payload) {
				fmt.Fprintf(b, "%sstring(%d) %q\n", indent, len(field.payload), string(field.payload))
			} else {
				fmt.Fprintf(b, "%sstring(%d) <invalid utf-8> %s\n",
					indent, len(field.payload), hex.EncodeToString(field.payload))
			}
		case TagU128:
			if len(field.payload) == 16 {
				var raw [16]byte
				copy(raw[:], field.payload)
				fmt.Fprintf(b, "%su128 %s\n", indent, U128FromBytes(raw))
			} else {
				fmt.Fprintf(b, "%su128 <%d bytes, want 16> %s\n",
					indent, len(field.payload), hex.EncodeToString(field.payload))
			}
		case TagByte, TagBool, TagActionKind:
			if len(field.payload) == 0 {
				fmt.Fprintf(b, "%s%s <empty>\n", indent, field.tag)
				break
			}
			fmt.Fprintf(b, "%s%s %d (0x%02x)\n", indent, field.tag, field.payload[0], field.payload[0])
		case TagAction, TagEntity, TagSession:
			fmt.Fprintf(b, "%s%s(%d bytes)\n", indent, field.tag, len(field.payload))
			if err := diagnoseInto(b, field.payload, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
