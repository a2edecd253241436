// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package sessionstore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"
)

// The envelope is the on-disk frame around a core wire record. It is
// store-layer bookkeeping, not part of the wire format — the bytes
// inside decompress to exactly what lib/record encoded.
//
//	magic "FLD1"(4) | flags(1) | compression(1) | rawSize(4, BE) |
//	digest(32) | body
//
// digest is the BLAKE3 hash of the core bytes, verified after the
// body is (unsealed and) decompressed. rawSize is the core byte count
// the body must decompress to.

// envelopeMagic identifies a fieldline envelope, version 1.
var envelopeMagic = [4]byte{'F', 'L', 'D', '1'}

// envelopeHeaderSize is the fixed header length before the body.
const envelopeHeaderSize = 4 + 1 + 1 + 4 + 32

// flagSealed marks a body that is age ciphertext rather than plain
// compressed bytes.
const flagSealed = 0x01

// maxEnvelopeRaw caps the decompressed size a header may claim. A
// session record tops out near the wire format's 64 KiB payload
// limit; the cap keeps a corrupt header from driving a huge
// allocation.
const maxEnvelopeRaw = 1 << 20

// CompressionTag identifies the compression algorithm used for an
// envelope body. Stored as 1 byte in the header; the values are
// format constants.
type CompressionTag uint8

const (
	// CompressionNone stores the core bytes as-is. Also the
	// automatic fallback when compression would grow the body —
	// session records are small.
	CompressionNone CompressionTag = 0

	// CompressionLZ4 is block-mode LZ4: fastest, modest ratio.
	CompressionLZ4 CompressionTag = 1

	// CompressionZstd is zstd at the default level: better ratio,
	// still cheap at session-record sizes. The default.
	CompressionZstd CompressionTag = 2
)

// String returns the human-readable name of a compression tag.
func (tag CompressionTag) String() string {
	switch tag {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(tag))
	}
}

// ParseCompressionTag parses a compression tag from its string
// representation (config and CLI flag values).
func ParseCompressionTag(name string) (CompressionTag, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (none, lz4, zstd)", name)
	}
}

// ErrNotEnvelope is returned when a file does not start with the
// envelope magic.
var ErrNotEnvelope = errors.New("sessionstore: not a fieldline envelope")

// ErrDigestMismatch is returned when the decompressed core bytes do
// not hash to the digest recorded in the header.
var ErrDigestMismatch = errors.New("sessionstore: content digest mismatch")

// ErrSealed is returned when Open encounters a sealed envelope and no
// unsealer was provided.
var ErrSealed = errors.New("sessionstore: envelope is sealed")

// errIncompressible signals that compression did not shrink the body;
// the envelope writer falls back to CompressionNone.
var errIncompressible = errors.New("sessionstore: data did not compress")

// wrapEnvelope frames core bytes for storage: hash, compress (falling
// back to none when that grows the body), optionally seal.
func wrapEnvelope(core []byte, tag CompressionTag, seal Sealer) ([]byte, error) {
	digest := blake3.Sum256(core)

	body, err := compressBody(core, tag)
	if errors.Is(err, errIncompressible) {
		tag = CompressionNone
		body = core
	} else if err != nil {
		return nil, err
	}

	flags := byte(0)
	if seal != nil {
		sealed, err := seal(body)
		if err != nil {
			return nil, fmt.Errorf("sealing envelope: %w", err)
		}
		body = sealed
		flags |= flagSealed
	}

	out := make([]byte, 0, envelopeHeaderSize+len(body))
	out = append(out, envelopeMagic[:]...)
	out = append(out, flags, byte(tag))
	out = binary.BigEndian.AppendUint32(out, uint32(len(core)))
	out = append(out, digest[:]...)
	return append(out, body...), nil
}

// unwrapEnvelope reverses wrapEnvelope and verifies the digest. A nil
// unseal with a sealed envelope fails with ErrSealed.
func unwrapEnvelope(data []byte, unseal Unsealer) ([]byte, error) {
	if len(data) < envelopeHeaderSize || !bytes.Equal(data[:4], envelopeMagic[:]) {
		return nil, ErrNotEnvelope
	}
	flags := data[4]
	tag := CompressionTag(data[5])
	rawSize := int(binary.BigEndian.Uint32(data[6:10]))
	if rawSize > maxEnvelopeRaw {
		return nil, fmt.Errorf("envelope claims %d raw bytes (cap %d): %w",
			rawSize, maxEnvelopeRaw, ErrNotEnvelope)
	}
	var digest [32]byte
	copy(digest[:], data[10:42])
	body := data[envelopeHeaderSize:]

	if flags&flagSealed != 0 {
		if unseal == nil {
			return nil, ErrSealed
		}
		plain, err := unseal(body)
		if err != nil {
			return nil, fmt.Errorf("unsealing envelope: %w", err)
		}
		body = plain
	}

	core, err := decompressBody(body, tag, rawSize)
	if err != nil {
		return nil, err
	}

	if blake3.Sum256(core) != digest {
		return nil, ErrDigestMismatch
	}
	return core, nil
}

// zstdEncoder and zstdDecoder are reused across calls. Both are safe
// for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("sessionstore: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("sessionstore: zstd decoder initialization failed: " + err.Error())
	}
}

func compressBody(data []byte, tag CompressionTag) ([]byte, error) {
	switch tag {
	case CompressionNone:
		return data, nil

	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		destination := make([]byte, bound)
		written, err := lz4.CompressBlock(data, destination, nil)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		// CompressBlock returns 0 for incompressible input.
		if written == 0 || written >= len(data) {
			return nil, errIncompressible
		}
		return destination[:written], nil

	case CompressionZstd:
		compressed := zstdEncoder.EncodeAll(data, nil)
		if len(compressed) >= len(data) {
			return nil, errIncompressible
		}
		return compressed, nil

	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

func decompressBody(body []byte, tag CompressionTag, rawSize int) ([]byte, error) {
	switch tag {
	case CompressionNone:
		if len(body) != rawSize {
			return nil, fmt.Errorf("uncompressed body is %d bytes, header says %d",
				len(body), rawSize)
		}
		return body, nil

	case CompressionLZ4:
		destination := make([]byte, rawSize)
		read, err := lz4.UncompressBlock(body, destination)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if read != rawSize {
			return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, rawSize)
		}
		return destination, nil

	case CompressionZstd:
		result, err := zstdDecoder.DecodeAll(body, make([]byte, 0, rawSize))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(result) != rawSize {
			return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), rawSize)
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}
