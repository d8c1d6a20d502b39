// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"encoding/base64"
	"fmt"
)

// KeyMaterial is the immutable key/IV pair owned by one codec.
type KeyMaterial struct {
	key []byte
	iv  []byte
}

// NewKeyMaterial decodes base64Key and base64IV (standard base64 with
// padding). The key must be 16, 24 or 32 bytes long and the IV exactly one
// AES block. Any violation returns an error wrapping [ErrConfig].
func NewKeyMaterial(base64Key, base64IV string) (KeyMaterial, error) {
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("%w: decode key: %w", ErrConfig, err)
	}
	switch len(key) {
	case 16, 24, 32:
	default:
		return KeyMaterial{}, fmt.Errorf("%w: key length %d, want 16, 24 or 32 bytes", ErrConfig, len(key))
	}

	iv, err := base64.StdEncoding.DecodeString(base64IV)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("%w: decode iv: %w", ErrConfig, err)
	}
	if len(iv) != aes.BlockSize {
		return KeyMaterial{}, fmt.Errorf("%w: iv length %d, want %d bytes", ErrConfig, len(iv), aes.BlockSize)
	}

	return KeyMaterial{key: key, iv: iv}, nil
}

// KeySize returns the key length in bytes (16, 24 or 32).
func (m KeyMaterial) KeySize() int {
	return len(m.key)
}
