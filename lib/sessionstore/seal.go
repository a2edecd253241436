// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package sessionstore

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"
)

// Sealer encrypts an envelope body before it is written; Unsealer
// reverses it on load. Both operate on raw bytes — the envelope is a
// binary file, so no armor or base64 layer is involved.
type Sealer func(plaintext []byte) ([]byte, error)

// Unsealer decrypts a sealed envelope body.
type Unsealer func(ciphertext []byte) ([]byte, error)

// RecipientSealer returns a Sealer that encrypts to one or more age
// x25519 public keys (age1... format). At least one recipient is
// required.
func RecipientSealer(recipientKeys []string) (Sealer, error) {
	if len(recipientKeys) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}
	recipients := make([]age.Recipient, 0, len(recipientKeys))
	for _, key := range recipientKeys {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return nil, fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}
	return func(plaintext []byte) ([]byte, error) {
		return ageEncrypt(plaintext, recipients...)
	}, nil
}

// PassphraseSealer returns a Sealer using age's scrypt recipient.
func PassphraseSealer(passphrase string) (Sealer, error) {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("building scrypt recipient: %w", err)
	}
	return func(plaintext []byte) ([]byte, error) {
		return ageEncrypt(plaintext, recipient)
	}, nil
}

// IdentityUnsealer returns an Unsealer holding one or more age x25519
// private keys (AGE-SECRET-KEY-1... format).
func IdentityUnsealer(identityKeys []string) (Unsealer, error) {
	if len(identityKeys) == 0 {
		return nil, fmt.Errorf("at least one identity is required")
	}
	identities := make([]age.Identity, 0, len(identityKeys))
	for _, key := range identityKeys {
		identity, err := age.ParseX25519Identity(key)
		if err != nil {
			return nil, fmt.Errorf("parsing identity key: %w", err)
		}
		identities = append(identities, identity)
	}
	return func(ciphertext []byte) ([]byte, error) {
		return ageDecrypt(ciphertext, identities...)
	}, nil
}

// PassphraseUnsealer returns an Unsealer using age's scrypt identity.
func PassphraseUnsealer(passphrase string) (Unsealer, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("building scrypt identity: %w", err)
	}
	return func(ciphertext []byte) ([]byte, error) {
		return ageDecrypt(ciphertext, identity)
	}, nil
}

// ParseRecipientKey validates an age public key string before it is
// accepted from config or a flag.
func ParseRecipientKey(publicKey string) error {
	if _, err := age.ParseX25519Recipient(publicKey); err != nil {
		return fmt.Errorf("invalid age public key: %w", err)
	}
	return nil
}

func ageEncrypt(plaintext []byte, recipients ...age.Recipient) ([]byte, error) {
	var ciphertext bytes.Buffer
	writer, err := age.Encrypt(&ciphertext, recipients...)
	if err != nil {
		return nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := writer.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing age encryption: %w", err)
	}
	return ciphertext.Bytes(), nil
}

func ageDecrypt(ciphertext []byte, identities ...age.Identity) ([]byte, error) {
	reader, err := age.Decrypt(bytes.NewReader(ciphertext), identities...)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading decrypted plaintext: %w", err)
	}
	return plaintext, nil
}
