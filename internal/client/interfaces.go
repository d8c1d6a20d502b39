// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-fire-crypt/internal/adapter"
	"github.com/MKhiriev/go-fire-crypt/models"
)

// Client is the application facade consumed by the command line.
type Client interface {
	// Encrypt returns the ciphertext of a single string.
	Encrypt(plaintext string) string

	// Decrypt returns the plaintext of a single ciphertext, or an error
	// wrapping crypto.ErrMalformedInput or crypto.ErrCipher.
	Decrypt(ciphertext string) (string, error)

	// EncryptTree encrypts every string leaf of v.
	EncryptTree(v models.Value) models.Value

	// DecryptTree decrypts every string leaf of v, keeping leaves that do not
	// decrypt as they are.
	DecryptTree(v models.Value) models.Value

	// Documents returns the document store, or the configuration error that
	// prevents building it.
	Documents() (adapter.DocumentStore, error)

	// Tree returns the tree store, or the configuration error that prevents
	// building it.
	Tree() (adapter.TreeStore, error)
}
