// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec applies a string cipher to every Text leaf of a
// [models.Value] tree while keeping the tree's shape.
//
// Encryption never fails. Decryption is total as well: a leaf that is not
// ciphertext produced by the configured key is returned unchanged, so
// documents that mix plaintext and ciphertext fields decode without error.
package codec

import (
	"github.com/MKhiriev/go-fire-crypt/internal/crypto"
	"github.com/MKhiriev/go-fire-crypt/internal/logger"
	"github.com/MKhiriev/go-fire-crypt/models"
)

// TreeCodec walks value trees and encrypts or decrypts their Text leaves.
// It holds no mutable state and is safe for concurrent use.
type TreeCodec struct {
	cipher crypto.Codec
	logger *logger.Logger
}

// NewTreeCodec returns a TreeCodec that uses c for every leaf. Leaves left
// as-is during decryption are reported on log at Debug level, by failure
// kind only.
func NewTreeCodec(c crypto.Codec, log *logger.Logger) *TreeCodec {
	if log == nil {
		log = logger.Nop()
	}
	return &TreeCodec{cipher: c, logger: log}
}

// EncryptTree returns a copy of v with every Text leaf replaced by its
// ciphertext. Null stays Null; sequences keep their length and order;
// mappings keep their keys and key order.
func (t *TreeCodec) EncryptTree(v models.Value) models.Value {
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Str()
		return models.NewText(t.cipher.Encrypt(s))
	case models.KindSequence:
		items := v.Items()
		for i := range items {
			items[i] = t.EncryptTree(items[i])
		}
		return models.NewSequence(items...)
	case models.KindMapping:
		pairs := v.Pairs()
		for i := range pairs {
			pairs[i].Value = t.EncryptTree(pairs[i].Value)
		}
		return models.NewMapping(pairs...)
	default:
		return models.NewNull()
	}
}

// DecryptTree mirrors EncryptTree. Each Text leaf is decrypted on its own;
// when a leaf is not valid base64 or does not decrypt under the key, the
// original string is kept and the walk continues with the next leaf.
func (t *TreeCodec) DecryptTree(v models.Value) models.Value {
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Str()
		return models.NewText(t.trySafeDecrypt(s))
	case models.KindSequence:
		items := v.Items()
		for i := range items {
			items[i] = t.DecryptTree(items[i])
		}
		return models.NewSequence(items...)
	case models.KindMapping:
		pairs := v.Pairs()
		for i := range pairs {
			pairs[i].Value = t.DecryptTree(pairs[i].Value)
		}
		return models.NewMapping(pairs...)
	default:
		return models.NewNull()
	}
}

func (t *TreeCodec) trySafeDecrypt(s string) string {
	res := t.cipher.TryDecrypt(s)
	switch res.Failure {
	case crypto.FailureNone:
		return res.Text
	case crypto.FailureMalformedInput, crypto.FailureCipher:
		t.logger.Debug().Stringer("failure", res.Failure).Msg("leaf kept as stored")
		return s
	default:
		t.logger.Warn().Stringer("failure", res.Failure).Msg("unknown decrypt failure, leaf kept as stored")
		return s
	}
}
