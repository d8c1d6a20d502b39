// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-fire-crypt/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	Crypto struct {
		Key string `json:"key"`
		IV  string `json:"iv"`
	} `json:"crypto,omitempty"`

	Firestore struct {
		ProjectID      string   `json:"project_id"`
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		FieldMode      string   `json:"field_mode"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"firestore,omitempty"`

	Realtime struct {
		ProjectID      string   `json:"project_id"`
		IDToken        string   `json:"id_token"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"realtime,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Crypto: Crypto{
			Key: jsonCfg.Crypto.Key,
			IV:  jsonCfg.Crypto.IV,
		},
		Firestore: Firestore{
			ProjectID:      jsonCfg.Firestore.ProjectID,
			APIKey:         jsonCfg.Firestore.APIKey,
			BaseURL:        jsonCfg.Firestore.BaseURL,
			FieldMode:      models.FieldMode(jsonCfg.Firestore.FieldMode),
			RequestTimeout: time.Duration(jsonCfg.Firestore.RequestTimeout),
		},
		Realtime: Realtime{
			ProjectID:      jsonCfg.Realtime.ProjectID,
			IDToken:        jsonCfg.Realtime.IDToken,
			BaseURL:        jsonCfg.Realtime.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Realtime.RequestTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
