// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the string cipher used for field-level
// encryption: AES in CBC mode with PKCS#7 padding under a fixed key and IV,
// producing standard base64 text.
//
// The IV is fixed for the lifetime of a codec, so equal plaintexts produce
// equal ciphertexts and there is no integrity tag. This matches the format
// of data already stored by existing clients and must not be changed without
// a migration of that data.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec encrypts and decrypts single strings.
type Codec interface {
	// Encrypt returns the base64 ciphertext of plaintext. The result is
	// deterministic for a given codec.
	Encrypt(plaintext string) string

	// TryDecrypt attempts to decrypt ciphertext and reports the outcome as a
	// [DecryptResult] instead of an error, so callers can branch on the
	// failure kind.
	TryDecrypt(ciphertext string) DecryptResult

	// Decrypt is TryDecrypt reporting a failure as an error wrapping
	// [ErrMalformedInput] or [ErrCipher].
	Decrypt(ciphertext string) (string, error)
}
