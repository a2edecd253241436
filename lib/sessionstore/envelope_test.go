// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package sessionstore

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"filippo.io/age"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	// Repetitive payload so lz4 and zstd actually engage instead of
	// falling back to none.
	core := []byte(strings.Repeat("session payload ", 256))

	for _, tag := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(tag.String(), func(t *testing.T) {
			enveloped, err := wrapEnvelope(core, tag, nil)
			if err != nil {
				t.Fatalf("wrapEnvelope: %v", err)
			}
			if tag != CompressionNone && len(enveloped) >= envelopeHeaderSize+len(core) {
				t.Errorf("compressed envelope (%d bytes) not smaller than raw (%d)",
					len(enveloped), envelopeHeaderSize+len(core))
			}
			unwrapped, err := unwrapEnvelope(enveloped, nil)
			if err != nil {
				t.Fatalf("unwrapEnvelope: %v", err)
			}
			if !bytes.Equal(unwrapped, core) {
				t.Error("round-trip mismatch")
			}
		})
	}
}

func TestEnvelopeIncompressibleFallsBack(t *testing.T) {
	// Tiny input: compression overhead exceeds any gain.
	core := []byte{1, 2, 3}
	enveloped, err := wrapEnvelope(core, CompressionZstd, nil)
	if err != nil {
		t.Fatalf("wrapEnvelope: %v", err)
	}
	if CompressionTag(enveloped[5]) != CompressionNone {
		t.Errorf("stored tag = %s, want none fallback", CompressionTag(enveloped[5]))
	}
	unwrapped, err := unwrapEnvelope(enveloped, nil)
	if err != nil {
		t.Fatalf("unwrapEnvelope: %v", err)
	}
	if !bytes.Equal(unwrapped, core) {
		t.Error("round-trip mismatch")
	}
}

func TestEnvelopeRejectsOversizeClaim(t *testing.T) {
	enveloped, err := wrapEnvelope([]byte("abc"), CompressionNone, nil)
	if err != nil {
		t.Fatalf("wrapEnvelope: %v", err)
	}
	// Forge a huge rawSize in the header.
	enveloped[6], enveloped[7], enveloped[8], enveloped[9] = 0xff, 0xff, 0xff, 0xff
	if _, err := unwrapEnvelope(enveloped, nil); !errors.Is(err, ErrNotEnvelope) {
		t.Errorf("unwrapEnvelope = %v, want ErrNotEnvelope", err)
	}
}

func TestParseCompressionTag(t *testing.T) {
	for _, tag := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		parsed, err := ParseCompressionTag(tag.String())
		if err != nil || parsed != tag {
			t.Errorf("ParseCompressionTag(%s) = %v, %v", tag, parsed, err)
		}
	}
	if _, err := ParseCompressionTag("brotli"); err == nil {
		t.Error("ParseCompressionTag accepted an unknown name")
	}
}

func TestRecipientSealerRoundTrip(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity: %v", err)
	}

	seal, err := RecipientSealer([]string{identity.Recipient().String()})
	if err != nil {
		t.Fatalf("RecipientSealer: %v", err)
	}
	enveloped, err := wrapEnvelope([]byte("secret"), CompressionNone, seal)
	if err != nil {
		t.Fatalf("wrapEnvelope: %v", err)
	}
	if enveloped[4]&flagSealed == 0 {
		t.Fatal("sealed flag not set")
	}

	unseal, err := IdentityUnsealer([]string{identity.String()})
	if err != nil {
		t.Fatalf("IdentityUnsealer: %v", err)
	}
	unwrapped, err := unwrapEnvelope(enveloped, unseal)
	if err != nil {
		t.Fatalf("unwrapEnvelope: %v", err)
	}
	if string(unwrapped) != "secret" {
		t.Errorf("round-trip = %q", unwrapped)
	}
}

func TestParseRecipientKey(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity: %v", err)
	}
	if err := ParseRecipientKey(identity.Recipient().String()); err != nil {
		t.Errorf("ParseRecipientKey(valid) = %v", err)
	}
	if err := ParseRecipientKey("age1notakey"); err == nil {
		t.Error("ParseRecipientKey accepted an invalid key")
	}
}
