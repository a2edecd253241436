// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// U128 is a 128-bit unsigned integer. On the wire it is exactly 16
// big-endian bytes. Go has no native 128-bit integer, so the value is
// held as two 64-bit halves.
type U128 struct {
	Hi uint64
	Lo uint64
}

// U128FromUint64 widens a uint64 to a U128.
func U128FromUint64(v uint64) U128 {
	return U128{Lo: v}
}

// U128FromBytes builds a U128 from its 16-byte big-endian encoding.
func U128FromBytes(b [16]byte) U128 {
	return U128{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// Bytes returns the 16-byte big-endian encoding of v.
func (v U128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:16], v.Lo)
	return b
}

// IsZero reports whether v is zero.
func (v U128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// String returns the decimal representation of v.
func (v U128) String() string {
	if v.Hi == 0 {
		return fmt.Sprintf("%d", v.Lo)
	}
	n := new(big.Int).SetUint64(v.Hi)
	n.Lsh(n, 64)
	n.Or(n, new(big.Int).SetUint64(v.Lo))
	return n.String()
}

// Hex returns the fixed-width 32-character hex representation of v.
// This is the canonical form for action identifiers in logs and
// command output.
func (v U128) Hex() string {
	return fmt.Sprintf("%016x%016x", v.Hi, v.Lo)
}
