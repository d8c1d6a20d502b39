// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrConfig is returned by [NewKeyMaterial] and [NewCodec] when the key
	// or IV is not valid base64 or has the wrong length.
	ErrConfig = errors.New("invalid key material")

	// ErrMalformedInput is returned by [AESCodec.Decrypt] when the input is
	// not valid base64.
	ErrMalformedInput = errors.New("malformed ciphertext encoding")

	// ErrCipher is returned by [AESCodec.Decrypt] when the decoded bytes do
	// not decrypt under the configured key: wrong block alignment, bad
	// padding, or a result that is not valid UTF-8.
	ErrCipher = errors.New("decryption failed")
)
