// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zeroKey = "AAAAAAAAAAAAAAAAAAAAAA=="

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func withCrypto(cfg *StructuredConfig) *StructuredConfig {
	cfg.Crypto = Crypto{Key: zeroKey, IV: zeroKey}
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// because key material is mandatory.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier config
// is kept and only zero fields are filled from later ones.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		withCrypto(&StructuredConfig{Realtime: Realtime{ProjectID: "from-flags"}}),
		&StructuredConfig{
			Realtime:  Realtime{ProjectID: "from-env", IDToken: "env-token"},
			Firestore: Firestore{ProjectID: "env-project"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.Realtime.ProjectID)
	assert.Equal(t, "env-token", cfg.Realtime.IDToken)
	assert.Equal(t, "env-project", cfg.Firestore.ProjectID)
}

// TestBuild_AppliesDefaults verifies the field mode and log level defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, withCrypto(&StructuredConfig{}))

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, models.FieldModeString, cfg.Firestore.FieldMode)
	assert.Equal(t, "info", cfg.Log.Level)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{"valid", withCrypto(&StructuredConfig{}), nil},
		{"missing key", &StructuredConfig{Crypto: Crypto{IV: zeroKey}}, ErrInvalidCryptoConfigs},
		{"missing iv", &StructuredConfig{Crypto: Crypto{Key: zeroKey}}, ErrInvalidCryptoConfigs},
		{"typed mode", withCrypto(&StructuredConfig{Firestore: Firestore{FieldMode: models.FieldModeTyped}}), nil},
		{"unknown mode", withCrypto(&StructuredConfig{Firestore: Firestore{FieldMode: "binary"}}), ErrInvalidStoreConfigs},
		{"negative timeout", withCrypto(&StructuredConfig{Realtime: Realtime{RequestTimeout: -time.Second}}), ErrInvalidStoreConfigs},
		{"known level", withCrypto(&StructuredConfig{Log: Log{Level: "WARN"}}), nil},
		{"unknown level", withCrypto(&StructuredConfig{Log: Log{Level: "loud"}}), ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStoreValidate(t *testing.T) {
	assert.ErrorIs(t, Firestore{}.Validate(), ErrInvalidStoreConfigs)
	assert.NoError(t, Firestore{ProjectID: "demo"}.Validate())
	assert.NoError(t, Firestore{BaseURL: "http://localhost:8080"}.Validate())

	assert.ErrorIs(t, Realtime{}.Validate(), ErrInvalidStoreConfigs)
	assert.NoError(t, Realtime{ProjectID: "demo"}.Validate())
	assert.NoError(t, Realtime{BaseURL: "http://localhost:9000/"}.Validate())
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that no config is appended when no source
// names a JSON file.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the JSON file is appended last and
// only fills what earlier sources left empty.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"crypto":   map[string]string{"key": zeroKey, "iv": zeroKey},
		"realtime": map[string]string{"project_id": "from-json", "id_token": "json-token"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Realtime:     Realtime{ProjectID: "from-flags"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.Realtime.ProjectID)
	assert.Equal(t, "json-token", cfg.Realtime.IDToken)
	assert.Equal(t, zeroKey, cfg.Crypto.Key)
}

// TestWithJSON_MissingFile verifies that an unreadable file is reported by
// build.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies flags > env > JSON.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"crypto":    map[string]string{"key": "json-key", "iv": zeroKey},
		"firestore": map[string]string{"project_id": "json-project", "api_key": "json-api-key"},
		"log":       map[string]string{"level": "error"},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":               path,
		"CRYPTO_KEY":           "env-key",
		"FIRESTORE_PROJECT_ID": "env-project",
	})

	flags := &StructuredConfig{Crypto: Crypto{Key: zeroKey}}

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, zeroKey, cfg.Crypto.Key)
	assert.Equal(t, zeroKey, cfg.Crypto.IV)
	assert.Equal(t, "env-project", cfg.Firestore.ProjectID)
	assert.Equal(t, "json-api-key", cfg.Firestore.APIKey)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, path, cfg.JSONFilePath)
}
