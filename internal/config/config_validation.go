// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
//
// Key material is required because every operation encrypts or decrypts.
// Store settings are only checked for shape here; whether a store is
// reachable at all is decided by [Firestore.Validate] and [Realtime.Validate]
// when that store is actually used.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Crypto.Key) == "" || strings.TrimSpace(cfg.Crypto.IV) == "" {
		return fmt.Errorf("%w: key and iv are required", ErrInvalidCryptoConfigs)
	}

	switch cfg.Firestore.FieldMode {
	case "", models.FieldModeString, models.FieldModeTyped:
	default:
		return fmt.Errorf("%w: unknown field mode %q", ErrInvalidStoreConfigs, cfg.Firestore.FieldMode)
	}

	if cfg.Firestore.RequestTimeout < 0 || cfg.Realtime.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidStoreConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Firestore.FieldMode == "" {
		cfg.Firestore.FieldMode = models.FieldModeString
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = zerolog.LevelInfoValue
	}
}

// Validate reports whether the document store can be addressed.
func (f Firestore) Validate() error {
	if f.ProjectID == "" && f.BaseURL == "" {
		return fmt.Errorf("%w: firestore project id or base url is required", ErrInvalidStoreConfigs)
	}
	return nil
}

// Validate reports whether the tree store can be addressed.
func (r Realtime) Validate() error {
	if r.ProjectID == "" && r.BaseURL == "" {
		return fmt.Errorf("%w: realtime project id or base url is required", ErrInvalidStoreConfigs)
	}
	return nil
}
