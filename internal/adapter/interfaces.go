// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the REST adapters for the two remote stores.
//
// [DocumentStore] talks to a Firestore-shaped document database and
// [TreeStore] to a Realtime-Database-shaped JSON tree. Both encrypt every
// string leaf before it leaves the process and decrypt on the way back, so
// callers only ever see plaintext.
//
// Non-2xx responses are returned as *[RemoteError], which matches [ErrRemote]
// and, where one exists, the status sentinel for its code
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). Transport errors
// are returned wrapped with the operation name and are never reclassified.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fire-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TreeCipher transforms every string leaf of a value tree.
// It is satisfied by *codec.TreeCodec.
type TreeCipher interface {
	EncryptTree(v models.Value) models.Value
	DecryptTree(v models.Value) models.Value
}

// DocumentStore reads and writes encrypted documents.
type DocumentStore interface {
	// Put encrypts data and writes it as the fields of the document at path.
	// Only the fields named in data are overwritten; other fields of an
	// existing document are left untouched. data must be a mapping.
	Put(ctx context.Context, path models.DocumentPath, data models.Value) error

	// Get reads the document at path and returns its decrypted fields.
	Get(ctx context.Context, path models.DocumentPath) (models.Value, error)

	// Delete removes the document at path.
	Delete(ctx context.Context, path models.DocumentPath) error
}

// TreeStore reads and writes encrypted subtrees of a JSON tree.
type TreeStore interface {
	// BuildURL returns the request URL for path, including the identity
	// token when one is configured.
	BuildURL(path models.TreePath) string

	// Set replaces the subtree at path with the encrypted form of data.
	Set(ctx context.Context, path models.TreePath, data models.Value) error

	// Push appends the encrypted form of data as a new child of path and
	// returns the key the store generated for it.
	Push(ctx context.Context, path models.TreePath, data models.Value) (string, error)

	// Get reads the subtree at path and returns it decrypted. A path with no
	// data yields a Null value.
	Get(ctx context.Context, path models.TreePath) (models.Value, error)

	// Update merges the encrypted children of data into the subtree at path.
	// data must be a mapping.
	Update(ctx context.Context, path models.TreePath, data models.Value) error

	// Delete removes the subtree at path.
	Delete(ctx context.Context, path models.TreePath) error
}
