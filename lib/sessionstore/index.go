// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package sessionstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fieldline-io/fieldline/lib/codec"
)

// IndexEntry is the listing metadata for one session. The index is a
// convenience cache — the session files are the source of truth, and
// a stale or missing index only degrades "fieldline list".
type IndexEntry struct {
	Name    string    `cbor:"name"`
	Created time.Time `cbor:"created"`
	Updated time.Time `cbor:"updated"`
	Actions int       `cbor:"actions"`
	// Digest is the hex BLAKE3 digest of the session's core wire
	// bytes at last save.
	Digest string `cbor:"digest"`
	Sealed bool   `cbor:"sealed"`
}

// index is the on-disk shape of index.cbor.
type index struct {
	Sessions map[string]*IndexEntry `cbor:"sessions"`
}

func (s *Store) indexPath() string {
	return filepath.Join(s.root, "index.cbor")
}

// List returns index entries sorted by name.
func (s *Store) List() ([]IndexEntry, error) {
	idx, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	entries := make([]IndexEntry, 0, len(idx.Sessions))
	for _, entry := range idx.Sessions {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// loadIndex reads index.cbor; a missing file is an empty index.
func (s *Store) loadIndex() (*index, error) {
	idx := &index{Sessions: map[string]*IndexEntry{}}

	data, err := os.ReadFile(s.indexPath())
	if errors.Is(err, os.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session index: %w", err)
	}
	if err := codec.Unmarshal(data, idx); err != nil {
		return nil, fmt.Errorf("decoding session index: %w", err)
	}
	if idx.Sessions == nil {
		idx.Sessions = map[string]*IndexEntry{}
	}
	return idx, nil
}

// updateIndex applies mutate to the index and rewrites it atomically.
func (s *Store) updateIndex(mutate func(*index)) error {
	idx, err := s.loadIndex()
	if err != nil {
		return err
	}
	mutate(idx)

	data, err := codec.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encoding session index: %w", err)
	}
	if err := s.writeFileAtomic(s.indexPath(), data); err != nil {
		return fmt.Errorf("writing session index: %w", err)
	}
	return nil
}
