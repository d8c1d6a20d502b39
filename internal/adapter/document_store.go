// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-fire-crypt/internal/config"
	"github.com/MKhiriev/go-fire-crypt/internal/logger"
	"github.com/MKhiriev/go-fire-crypt/internal/utils"
	"github.com/MKhiriev/go-fire-crypt/internal/validators"
	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/go-resty/resty/v2"
)

const firestoreBaseURLFormat = "https://firestore.googleapis.com/v1/projects/%s/databases/(default)/documents"

type documentStore struct {
	restTransport

	baseURL   string
	apiKey    string
	fieldMode models.FieldMode

	cipher    TreeCipher
	validator validators.Validator
}

// NewDocumentStore constructs the REST implementation of [DocumentStore].
//
// The documents root is cfg.BaseURL when set, otherwise the public endpoint
// of cfg.ProjectID. An empty cfg.FieldMode means [models.FieldModeString].
//
// Returns an error wrapping config.ErrInvalidStoreConfigs if the store cannot
// be addressed or the field mode is unknown.
func NewDocumentStore(cfg config.Firestore, cipher TreeCipher, log *logger.Logger) (DocumentStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cipher == nil {
		return nil, errNilCipher
	}

	raw := cfg.BaseURL
	if raw == "" {
		raw = fmt.Sprintf(firestoreBaseURLFormat, url.PathEscape(cfg.ProjectID))
	}
	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: firestore base url: %w", config.ErrInvalidStoreConfigs, err)
	}

	mode := cfg.FieldMode
	switch mode {
	case "":
		mode = models.FieldModeString
	case models.FieldModeString, models.FieldModeTyped:
	default:
		return nil, fmt.Errorf("%w: unknown field mode %q", config.ErrInvalidStoreConfigs, mode)
	}

	return &documentStore{
		restTransport: newRestTransport(utils.NewHTTPClient(cfg.RequestTimeout), log, "document"),
		baseURL:       baseURL,
		apiKey:        cfg.APIKey,
		fieldMode:     mode,
		cipher:        cipher,
		validator:     validators.NewPathValidator(),
	}, nil
}

// Put implements [DocumentStore]. The request is a PATCH carrying one
// updateMask.fieldPaths per top-level key, so fields absent from data are
// kept. An empty mapping is a no-op.
//
// In string mode a top-level list or map is stored as the ciphertext of its
// JSON text and a Null as nullValue.
func (d *documentStore) Put(ctx context.Context, path models.DocumentPath, data models.Value) error {
	if err := d.validator.Validate(ctx, path); err != nil {
		return err
	}
	if err := d.validator.Validate(ctx, data, validators.FieldMapping); err != nil {
		return err
	}
	if data.Len() == 0 {
		return nil
	}

	plain := data
	if d.fieldMode != models.FieldModeTyped {
		var err error
		if plain, err = flattenFields(data); err != nil {
			return fmt.Errorf("put document: %w", err)
		}
	}

	fields, err := encodeFields(d.cipher.EncryptTree(plain), d.fieldMode)
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	body, err := json.Marshal(models.NewMapping(models.P(models.DocumentFields, fields)))
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}

	query := url.Values{}
	for _, key := range data.Keys() {
		query.Add("updateMask.fieldPaths", quoteFieldPath(key))
	}

	_, err = d.do(ctx, "put document", resty.MethodPatch, d.documentURL(path, query), body)
	return err
}

// Get implements [DocumentStore].
func (d *documentStore) Get(ctx context.Context, path models.DocumentPath) (models.Value, error) {
	if err := d.validator.Validate(ctx, path); err != nil {
		return models.Value{}, err
	}

	body, err := d.do(ctx, "get document", resty.MethodGet, d.documentURL(path, nil), nil)
	if err != nil {
		return models.Value{}, err
	}

	doc, err := models.ParseJSON(body)
	if err != nil {
		return models.Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	fields, ok := doc.Get(models.DocumentFields)
	if !ok {
		return models.Value{}, fmt.Errorf("%w: document has no %q", ErrParse, models.DocumentFields)
	}

	plain, err := decodeFields(fields)
	if err != nil {
		return models.Value{}, err
	}

	return d.cipher.DecryptTree(plain), nil
}

// Delete implements [DocumentStore].
func (d *documentStore) Delete(ctx context.Context, path models.DocumentPath) error {
	if err := d.validator.Validate(ctx, path); err != nil {
		return err
	}

	_, err := d.do(ctx, "delete document", resty.MethodDelete, d.documentURL(path, nil), nil)
	return err
}

func (d *documentStore) documentURL(path models.DocumentPath, query url.Values) string {
	segments := append(models.TreePath(path.Collection).Segments(), path.ID)
	u := d.baseURL + "/" + escapeSegments(segments)

	if d.apiKey != "" {
		if query == nil {
			query = url.Values{}
		}
		query.Set("key", d.apiKey)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
