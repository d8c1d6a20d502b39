// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"CRYPTO_KEY": "AAAAAAAAAAAAAAAAAAAAAA==",
		"CRYPTO_IV":  "AAAAAAAAAAAAAAAAAAAAAA==",

		"FIRESTORE_PROJECT_ID":      "demo",
		"FIRESTORE_API_KEY":         "api-key",
		"FIRESTORE_BASE_URL":        "http://localhost:8080/v1/projects/demo/databases/(default)/documents",
		"FIRESTORE_FIELD_MODE":      "typed",
		"FIRESTORE_REQUEST_TIMEOUT": "15s",

		"REALTIME_PROJECT_ID":      "demo-rtdb",
		"REALTIME_ID_TOKEN":        "token",
		"REALTIME_BASE_URL":        "http://localhost:9000/",
		"REALTIME_REQUEST_TIMEOUT": "5s",

		"LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAA==", cfg.Crypto.Key)
	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAA==", cfg.Crypto.IV)

	assert.Equal(t, "demo", cfg.Firestore.ProjectID)
	assert.Equal(t, "api-key", cfg.Firestore.APIKey)
	assert.Equal(t, "http://localhost:8080/v1/projects/demo/databases/(default)/documents", cfg.Firestore.BaseURL)
	assert.Equal(t, models.FieldModeTyped, cfg.Firestore.FieldMode)
	assert.Equal(t, 15*time.Second, cfg.Firestore.RequestTimeout)

	assert.Equal(t, "demo-rtdb", cfg.Realtime.ProjectID)
	assert.Equal(t, "token", cfg.Realtime.IDToken)
	assert.Equal(t, "http://localhost:9000/", cfg.Realtime.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Realtime.RequestTimeout)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CRYPTO_KEY":          "k",
		"REALTIME_PROJECT_ID": "demo",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "k", cfg.Crypto.Key)
	assert.Empty(t, cfg.Crypto.IV)
	assert.Equal(t, "demo", cfg.Realtime.ProjectID)
	assert.Empty(t, cfg.Firestore.ProjectID)
	assert.Zero(t, cfg.Firestore.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"FIRESTORE_REQUEST_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"CRYPTO_KEY",
		"CRYPTO_IV",

		"FIRESTORE_PROJECT_ID",
		"FIRESTORE_API_KEY",
		"FIRESTORE_BASE_URL",
		"FIRESTORE_FIELD_MODE",
		"FIRESTORE_REQUEST_TIMEOUT",

		"REALTIME_PROJECT_ID",
		"REALTIME_ID_TOKEN",
		"REALTIME_BASE_URL",
		"REALTIME_REQUEST_TIMEOUT",

		"LOG_LEVEL",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
