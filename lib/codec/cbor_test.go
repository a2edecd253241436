// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
	"time"
)

type sampleIndexEntry struct {
	Name    string    `cbor:"name"`
	Updated time.Time `cbor:"updated"`
	Actions int       `cbor:"actions"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	original := sampleIndexEntry{
		Name:    "alice",
		Updated: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Actions: 3,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleIndexEntry
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != original.Name || decoded.Actions != original.Actions ||
		!decoded.Updated.Equal(original.Updated) {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	entry := map[string]int{"b": 2, "a": 1, "c": 3}

	first, err := Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same value produced different bytes")
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	data, err := Marshal(map[string]any{"name": "alice", "future_field": true})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded struct {
		Name string `cbor:"name"`
	}
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != "alice" {
		t.Errorf("name = %q, want alice", decoded.Name)
	}
}
