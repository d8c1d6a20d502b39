// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"

	"github.com/MKhiriev/go-fire-crypt/internal/adapter"
	"github.com/MKhiriev/go-fire-crypt/internal/config"
	"github.com/MKhiriev/go-fire-crypt/internal/crypto"
	"github.com/MKhiriev/go-fire-crypt/internal/validators"
	"github.com/MKhiriev/go-fire-crypt/models"
)

// Describe returns the Msg* constant for err.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrConfig):
		return MsgInvalidKeyMaterial
	case errors.Is(err, config.ErrInvalidStoreConfigs):
		return MsgStoreNotConfigured
	case errors.Is(err, config.ErrInvalidCryptoConfigs),
		errors.Is(err, config.ErrInvalidLogConfigs):
		return MsgInvalidConfig
	case errors.Is(err, models.ErrInvalidJSON):
		return MsgInvalidJSON
	case errors.Is(err, validators.ErrNotMapping):
		return MsgNotMapping
	case errors.Is(err, validators.ErrInvalidCollection),
		errors.Is(err, validators.ErrInvalidDocumentID),
		errors.Is(err, validators.ErrInvalidTreePath):
		return MsgInvalidPath
	case errors.Is(err, crypto.ErrMalformedInput):
		return MsgNotBase64
	case errors.Is(err, crypto.ErrCipher):
		return MsgDecryptFailed
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return MsgUnauthorized
	case errors.Is(err, adapter.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, adapter.ErrRemote):
		return MsgRemoteError
	case errors.Is(err, adapter.ErrParse),
		errors.Is(err, adapter.ErrNoKey):
		return MsgUnexpectedResponse
	default:
		return MsgInternalError
	}
}
