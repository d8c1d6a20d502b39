// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and the per-store
// Validate methods when required configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidCryptoConfigs indicates missing key material.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStoreConfigs indicates invalid store settings
	// (for example, an unknown field mode or no way to address the store).
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
