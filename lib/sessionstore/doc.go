// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

// Package sessionstore persists encoded session records to a directory
// tree. It is the collaborator that owns names, paths, and files; the
// encoding itself lives entirely in lib/wire and lib/record, and the
// store always hands those packages complete, fully-buffered byte
// sequences.
//
// Layout under the store root:
//
//	sessions/<name>.fld   one enveloped session record per file
//	actions/<name>.log    concatenated action records, append-only
//	index.cbor            session index for listing (CBOR)
//
// Session files are wrapped in an envelope (magic, compression tag,
// BLAKE3 digest, optional age sealing) so corruption is detected on
// load and records can be stored compressed or encrypted at rest. The
// action log is a raw TLV stream — records are self-delimiting, which
// keeps appends a single write. All file replacement goes through a
// temp file and os.Rename.
package sessionstore
