// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package sessionstore

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/fieldline-io/fieldline/lib/record"
)

// ErrNotFound is returned when the named session does not exist.
var ErrNotFound = errors.New("sessionstore: session not found")

// Store is a session store rooted at a directory. Methods are plain
// synchronous file operations; the store keeps no open handles and no
// state between calls.
type Store struct {
	root string
}

// DefaultRoot returns the store root: $FIELDLINE_HOME if set,
// otherwise ~/.fieldline.
func DefaultRoot() (string, error) {
	if home := os.Getenv("FIELDLINE_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".fieldline"), nil
}

// Open opens (creating if needed) a store rooted at root.
func Open(root string) (*Store, error) {
	for _, dir := range []string{root, filepath.Join(root, "sessions"), filepath.Join(root, "actions")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory %s: %w", dir, err)
		}
	}
	return &Store{root: root}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) sessionPath(name string) string {
	return filepath.Join(s.root, "sessions", name+".fld")
}

func (s *Store) actionLogPath(name string) string {
	return filepath.Join(s.root, "actions", name+".log")
}

// ValidateName rejects names that would escape the store directory or
// collide with its bookkeeping: empty, dot-prefixed, over 128 bytes,
// or containing anything but letters, digits, '-', '_', '.'.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("session name is empty")
	}
	if len(name) > 128 {
		return fmt.Errorf("session name is %d bytes (max 128)", len(name))
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("session name %q starts with a dot", name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("session name %q contains %q (allowed: letters, digits, '-', '_', '.')", name, r)
		}
	}
	return nil
}

// SaveOptions controls how a session is written.
type SaveOptions struct {
	// Compression selects the envelope body compression. The zero
	// value is CompressionNone; callers normally pass the config
	// default (zstd).
	Compression CompressionTag

	// Seal, when non-nil, encrypts the envelope body at rest.
	Seal Sealer
}

// Save encodes and writes a session under name, replacing any
// existing file atomically, and updates the index.
func (s *Store) Save(name string, session *record.Session, opts SaveOptions) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	core, err := session.Encode()
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", name, err)
	}

	enveloped, err := wrapEnvelope(core, opts.Compression, opts.Seal)
	if err != nil {
		return fmt.Errorf("wrapping session %s: %w", name, err)
	}

	if err := s.writeFileAtomic(s.sessionPath(name), enveloped); err != nil {
		return fmt.Errorf("writing session %s: %w", name, err)
	}

	digest := blake3.Sum256(core)
	return s.updateIndex(func(idx *index) {
		now := time.Now().UTC()
		entry, ok := idx.Sessions[name]
		if !ok {
			entry = &IndexEntry{Name: name, Created: now}
			idx.Sessions[name] = entry
		}
		entry.Updated = now
		entry.Digest = hex.EncodeToString(digest[:])
		entry.Sealed = opts.Seal != nil
	})
}

// Load reads, unwraps, verifies, and decodes the named session.
// unseal may be nil; loading a sealed session then fails with
// ErrSealed.
func (s *Store) Load(name string, unseal Unsealer) (*record.Session, error) {
	core, err := s.LoadRaw(name, unseal)
	if err != nil {
		return nil, err
	}
	session, err := record.DecodeSession(core)
	if err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", name, err)
	}
	return session, nil
}

// LoadRaw returns the named session's core wire bytes after envelope
// verification, without decoding them. This is what "fieldline
// inspect" renders.
func (s *Store) LoadRaw(name string, unseal Unsealer) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.sessionPath(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("session %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading session %s: %w", name, err)
	}
	core, err := unwrapEnvelope(data, unseal)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", name, err)
	}
	return core, nil
}

// AppendAction appends one encoded action record to the named
// session's action log and bumps the index count. The session must
// exist.
func (s *Store) AppendAction(name string, action *record.Action) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, err := os.Stat(s.sessionPath(name)); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session %s: %w", name, ErrNotFound)
	} else if err != nil {
		return fmt.Errorf("checking session %s: %w", name, err)
	}

	encoded, err := action.Encode()
	if err != nil {
		return fmt.Errorf("encoding action for %s: %w", name, err)
	}

	file, err := os.OpenFile(s.actionLogPath(name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening action log for %s: %w", name, err)
	}
	if _, err := file.Write(encoded); err != nil {
		file.Close()
		return fmt.Errorf("appending action for %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing action log for %s: %w", name, err)
	}

	return s.updateIndex(func(idx *index) {
		if entry, ok := idx.Sessions[name]; ok {
			entry.Actions++
			entry.Updated = time.Now().UTC()
		}
	})
}

// Actions decodes the named session's action log, oldest first. A
// missing log is an empty history, not an error.
func (s *Store) Actions(name string) ([]record.Action, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.actionLogPath(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading action log for %s: %w", name, err)
	}
	actions, err := record.DecodeActionStream(data)
	if err != nil {
		return nil, fmt.Errorf("action log for %s: %w", name, err)
	}
	return actions, nil
}

// Remove deletes the named session, its action log, and its index
// entry.
func (s *Store) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.sessionPath(name)); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session %s: %w", name, ErrNotFound)
	} else if err != nil {
		return fmt.Errorf("removing session %s: %w", name, err)
	}
	if err := os.Remove(s.actionLogPath(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing action log for %s: %w", name, err)
	}
	return s.updateIndex(func(idx *index) {
		delete(idx.Sessions, name)
	})
}

// writeFileAtomic writes data to path via a temp file in the store
// root and an atomic rename.
func (s *Store) writeFileAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(s.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}

	success = true
	return nil
}
