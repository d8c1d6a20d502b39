// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// AESCodec is the AES-CBC implementation of [Codec]. It is safe for
// concurrent use: the block cipher is stateless and a fresh CBC mode is
// created per call.
type AESCodec struct {
	block cipher.Block
	iv    []byte
}

// NewCodec decodes the base64 key and IV and builds an [AESCodec]. Invalid
// input fails here rather than on first use; the error wraps [ErrConfig].
func NewCodec(base64Key, base64IV string) (*AESCodec, error) {
	material, err := NewKeyMaterial(base64Key, base64IV)
	if err != nil {
		return nil, err
	}
	return NewCodecFromKeyMaterial(material)
}

// NewCodecFromKeyMaterial builds an [AESCodec] from already decoded key
// material.
func NewCodecFromKeyMaterial(material KeyMaterial) (*AESCodec, error) {
	block, err := aes.NewCipher(material.key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrConfig, err)
	}
	return &AESCodec{block: block, iv: material.iv}, nil
}

// Encrypt implements [Codec]. It pads the UTF-8 bytes of plaintext with
// PKCS#7, encrypts them in CBC mode with the fixed IV and returns standard
// base64. The empty string encrypts to one full padding block.
func (c *AESCodec) Encrypt(plaintext string) string {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)
	return base64.StdEncoding.EncodeToString(out)
}

// TryDecrypt implements [Codec].
func (c *AESCodec) TryDecrypt(ciphertext string) DecryptResult {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return failed(FailureMalformedInput)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return failed(FailureCipher)
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, raw)

	plain, ok := pkcs7Unpad(out, aes.BlockSize)
	if !ok || !utf8.Valid(plain) {
		return failed(FailureCipher)
	}
	return decrypted(string(plain))
}

// Decrypt decodes and decrypts ciphertext. It returns an error wrapping
// [ErrMalformedInput] when the input is not base64, or [ErrCipher] when the
// bytes do not decrypt under the configured key.
func (c *AESCodec) Decrypt(ciphertext string) (string, error) {
	res := c.TryDecrypt(ciphertext)
	if !res.OK() {
		return "", res.Failure.Err()
	}
	return res.Text, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
