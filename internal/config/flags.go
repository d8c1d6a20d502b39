// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/spf13/pflag"
)

// fieldModeValue adapts *models.FieldMode to pflag.Value.
type fieldModeValue struct {
	mode *models.FieldMode
}

func (v fieldModeValue) String() string {
	if v.mode == nil {
		return ""
	}
	return string(*v.mode)
}

// Set stores s as is; unknown modes are rejected later by validate.
func (v fieldModeValue) Set(s string) error {
	*v.mode = models.FieldMode(s)
	return nil
}

func (v fieldModeValue) Type() string {
	return "mode"
}

// RegisterFlags registers all configuration flags on fs and returns the
// config they are written into. The returned value is only meaningful after
// fs has been parsed; pass it to [GetStructuredConfig].
//
// Flags:
//
//	--key                      base64 AES key
//	--iv                       base64 initialization vector
//	--firestore-project        document store project id
//	--firestore-api-key        document store api key
//	--firestore-url            document store base url
//	--field-mode               "string" or "typed"
//	--firestore-timeout        document store request timeout (e.g. "10s")
//	--realtime-project         tree store project id
//	--id-token                 tree store identity token
//	--realtime-url             tree store base url
//	--realtime-timeout         tree store request timeout
//	--log-level                zerolog level name
//	-c/--config                json file path with configs
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Crypto.Key, "key", "", "Base64 AES key (16, 24 or 32 bytes)")
	fs.StringVar(&cfg.Crypto.IV, "iv", "", "Base64 16-byte initialization vector")

	fs.StringVar(&cfg.Firestore.ProjectID, "firestore-project", "", "Document store project id")
	fs.StringVar(&cfg.Firestore.APIKey, "firestore-api-key", "", "Document store api key")
	fs.StringVar(&cfg.Firestore.BaseURL, "firestore-url", "", "Document store base url")
	fs.Var(fieldModeValue{mode: &cfg.Firestore.FieldMode}, "field-mode", `Document field mode: "string" or "typed"`)
	fs.DurationVar(&cfg.Firestore.RequestTimeout, "firestore-timeout", 0, "Document store request timeout (e.g. 10s)")

	fs.StringVar(&cfg.Realtime.ProjectID, "realtime-project", "", "Tree store project id")
	fs.StringVar(&cfg.Realtime.IDToken, "id-token", "", "Tree store identity token")
	fs.StringVar(&cfg.Realtime.BaseURL, "realtime-url", "", "Tree store base url")
	fs.DurationVar(&cfg.Realtime.RequestTimeout, "realtime-timeout", 0, "Tree store request timeout (e.g. 10s)")

	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
