// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-fire-crypt/models"
)

// StructuredConfig is the top-level configuration container for
// go-fire-crypt. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto holds the shared key material for field encryption.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Firestore holds connection settings for the document store.
	Firestore Firestore `envPrefix:"FIRESTORE_"`

	// Realtime holds connection settings for the tree store.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto holds base64-encoded AES key material.
type Crypto struct {
	// Key is the base64-encoded AES key (16, 24 or 32 bytes once decoded).
	// Env: CRYPTO_KEY
	Key string `env:"KEY"`

	// IV is the base64-encoded 16-byte initialization vector.
	// Env: CRYPTO_IV
	IV string `env:"IV"`
}

// Firestore holds settings for the document store adapter.
type Firestore struct {
	// ProjectID selects the project in the default base URL.
	// Env: FIRESTORE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// APIKey is appended to every request as ?key=.
	// Env: FIRESTORE_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL overrides the documents root, e.g. for an emulator.
	// Env: FIRESTORE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// FieldMode is either "string" (default) or "typed".
	// Env: FIRESTORE_FIELD_MODE
	FieldMode models.FieldMode `env:"FIELD_MODE"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: FIRESTORE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Realtime holds settings for the tree store adapter.
type Realtime struct {
	// ProjectID selects the database in the default base URL.
	// Env: REALTIME_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// IDToken is sent as ?auth= when set.
	// Env: REALTIME_ID_TOKEN
	IDToken string `env:"ID_TOKEN"`

	// BaseURL overrides the database root, e.g. for an emulator.
	// Env: REALTIME_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: REALTIME_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name. Empty means "info".
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (the first source that
// sets a field wins):
//  1. Command-line flags (already parsed into flags, may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		build()
}
