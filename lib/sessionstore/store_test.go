// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package sessionstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fieldline-io/fieldline/lib/record"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return store
}

func testSession() *record.Session {
	session := record.NewSession(record.Entity{Name: "alice", Tier: 7, Active: true})
	return &session
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	original := testSession()

	for _, compression := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(compression.String(), func(t *testing.T) {
			opts := SaveOptions{Compression: compression}
			if err := store.Save("alice", original, opts); err != nil {
				t.Fatalf("Save: %v", err)
			}
			loaded, err := store.Load("alice", nil)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if *loaded != *original {
				t.Errorf("round-trip = %+v, want %+v", *loaded, *original)
			}
		})
	}
}

func TestLoadMissingSession(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load("ghost", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load = %v, want ErrNotFound", err)
	}
}

func TestCorruptionDetected(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save("alice", testSession(), SaveOptions{Compression: CompressionNone}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path := filepath.Join(store.Root(), "sessions", "alice.fld")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// Flip one payload byte past the header.
	data[len(data)-1] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = store.Load("alice", nil)
	if !errors.Is(err, ErrDigestMismatch) {
		t.Errorf("Load of corrupted file = %v, want ErrDigestMismatch", err)
	}
}

func TestNotAnEnvelope(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(store.Root(), "sessions", "junk.fld")
	if err := os.WriteFile(path, []byte("not an envelope"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := store.Load("junk", nil); !errors.Is(err, ErrNotEnvelope) {
		t.Errorf("Load = %v, want ErrNotEnvelope", err)
	}
}

func TestSealedRoundTrip(t *testing.T) {
	store := newTestStore(t)

	seal, err := PassphraseSealer("correct horse")
	if err != nil {
		t.Fatalf("PassphraseSealer: %v", err)
	}
	if err := store.Save("alice", testSession(), SaveOptions{Compression: CompressionZstd, Seal: seal}); err != nil {
		t.Fatalf("Save sealed: %v", err)
	}

	// Without an unsealer the load must refuse, not return garbage.
	if _, err := store.Load("alice", nil); !errors.Is(err, ErrSealed) {
		t.Fatalf("Load without unsealer = %v, want ErrSealed", err)
	}

	unseal, err := PassphraseUnsealer("correct horse")
	if err != nil {
		t.Fatalf("PassphraseUnsealer: %v", err)
	}
	loaded, err := store.Load("alice", unseal)
	if err != nil {
		t.Fatalf("Load sealed: %v", err)
	}
	if *loaded != *testSession() {
		t.Errorf("sealed round-trip = %+v", *loaded)
	}

	// Wrong passphrase fails cleanly.
	wrong, err := PassphraseUnsealer("incorrect horse")
	if err != nil {
		t.Fatalf("PassphraseUnsealer: %v", err)
	}
	if _, err := store.Load("alice", wrong); err == nil {
		t.Error("Load with wrong passphrase succeeded")
	}
}

func TestActionLogAppendAndRead(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save("alice", testSession(), SaveOptions{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var recorded []record.Action
	for _, kind := range []record.ActionKind{record.KindTouch, record.KindRename} {
		action, err := record.NewAction(kind, "x")
		if err != nil {
			t.Fatalf("NewAction: %v", err)
		}
		if err := store.AppendAction("alice", &action); err != nil {
			t.Fatalf("AppendAction: %v", err)
		}
		recorded = append(recorded, action)
	}

	actions, err := store.Actions("alice")
	if err != nil {
		t.Fatalf("Actions: %v", err)
	}
	if len(actions) != len(recorded) {
		t.Fatalf("got %d actions, want %d", len(actions), len(recorded))
	}
	for i := range recorded {
		if actions[i] != recorded[i] {
			t.Errorf("action %d = %+v, want %+v", i, actions[i], recorded[i])
		}
	}

	// Appending to a missing session refuses.
	action, err := record.NewAction(record.KindTouch, "x")
	if err != nil {
		t.Fatalf("NewAction: %v", err)
	}
	if err := store.AppendAction("ghost", &action); !errors.Is(err, ErrNotFound) {
		t.Errorf("AppendAction(ghost) = %v, want ErrNotFound", err)
	}

	// No log means no history.
	if err := store.Save("bob", testSession(), SaveOptions{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	none, err := store.Actions("bob")
	if err != nil || len(none) != 0 {
		t.Errorf("Actions(bob) = %v, %v, want empty", none, err)
	}
}

func TestIndexTracksSessions(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fresh store lists %d entries", len(entries))
	}

	for _, name := range []string{"bob", "alice"} {
		if err := store.Save(name, testSession(), SaveOptions{}); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}
	action, err := record.NewAction(record.KindTouch, "")
	if err != nil {
		t.Fatalf("NewAction: %v", err)
	}
	if err := store.AppendAction("alice", &action); err != nil {
		t.Fatalf("AppendAction: %v", err)
	}

	entries, err = store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "alice" || entries[1].Name != "bob" {
		t.Fatalf("List = %+v, want alice then bob", entries)
	}
	if entries[0].Actions != 1 || entries[1].Actions != 0 {
		t.Errorf("action counts = %d, %d, want 1, 0", entries[0].Actions, entries[1].Actions)
	}
	if entries[0].Digest == "" || entries[0].Created.IsZero() || entries[0].Updated.IsZero() {
		t.Errorf("entry missing metadata: %+v", entries[0])
	}

	if err := store.Remove("alice"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	entries, err = store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "bob" {
		t.Errorf("after Remove, List = %+v", entries)
	}
	if _, err := store.Load("alice", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Remove = %v, want ErrNotFound", err)
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"alice", "a", "my-session_2", "v1.2"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}
	invalid := []string{"", ".hidden", "a/b", "a\\b", "..", "name with spaces", "héllo"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) accepted", name)
		}
	}
}
