// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-fire-crypt/internal/config"
	"github.com/MKhiriev/go-fire-crypt/internal/logger"
	"github.com/MKhiriev/go-fire-crypt/internal/utils"
	"github.com/MKhiriev/go-fire-crypt/internal/validators"
	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/go-resty/resty/v2"
)

const realtimeBaseURLFormat = "https://%s.firebaseio.com/"

type treeStore struct {
	restTransport

	baseURL string
	idToken string

	cipher    TreeCipher
	validator validators.Validator
}

// NewTreeStore constructs the REST implementation of [TreeStore].
//
// The database root is cfg.BaseURL when set, otherwise the public endpoint of
// cfg.ProjectID. If cfg.IDToken is a JWT that has already expired a warning is
// logged; requests are still sent and the store decides.
func NewTreeStore(cfg config.Realtime, cipher TreeCipher, log *logger.Logger) (TreeStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cipher == nil {
		return nil, errNilCipher
	}

	raw := cfg.BaseURL
	if raw == "" {
		raw = fmt.Sprintf(realtimeBaseURLFormat, cfg.ProjectID)
	}
	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: realtime base url: %w", config.ErrInvalidStoreConfigs, err)
	}

	t := &treeStore{
		restTransport: newRestTransport(utils.NewHTTPClient(cfg.RequestTimeout), log, "tree"),
		baseURL:       baseURL + "/",
		idToken:       strings.TrimSpace(cfg.IDToken),
		cipher:        cipher,
		validator:     validators.NewPathValidator(),
	}
	t.checkTokenExpiry(time.Now())

	return t, nil
}

func (t *treeStore) checkTokenExpiry(now time.Time) {
	if t.idToken == "" {
		return
	}

	exp, err := utils.TokenExpiry(t.idToken)
	if err != nil {
		// Database secrets and custom tokens are not JWTs with an expiry.
		t.logger.Debug().Err(err).Msg("identity token expiry unknown")
		return
	}
	if !exp.After(now) {
		t.logger.Warn().Time("expired_at", exp).Msg("identity token has expired, requests will likely be rejected")
	}
}

// BuildURL implements [TreeStore]: base + normalized path + ".json", with
// ?auth=<token> only when an identity token is configured.
func (t *treeStore) BuildURL(path models.TreePath) string {
	u := t.baseURL + escapeSegments(path.Segments()) + ".json"
	if t.idToken != "" {
		u += "?auth=" + url.QueryEscape(t.idToken)
	}
	return u
}

// Set implements [TreeStore] with a PUT.
func (t *treeStore) Set(ctx context.Context, path models.TreePath, data models.Value) error {
	body, err := t.encryptBody(ctx, path, data)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}

	_, err = t.do(ctx, "set", resty.MethodPut, t.BuildURL(path), body)
	return err
}

// Push implements [TreeStore] with a POST. The generated key is the "name"
// field of the response.
func (t *treeStore) Push(ctx context.Context, path models.TreePath, data models.Value) (string, error) {
	body, err := t.encryptBody(ctx, path, data)
	if err != nil {
		return "", fmt.Errorf("push: %w", err)
	}

	respBody, err := t.do(ctx, "push", resty.MethodPost, t.BuildURL(path), body)
	if err != nil {
		return "", err
	}

	var pushed models.PushResponse
	if err = json.Unmarshal(respBody, &pushed); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}
	if pushed.Name == "" {
		return "", ErrNoKey
	}

	return pushed.Name, nil
}

// Get implements [TreeStore].
func (t *treeStore) Get(ctx context.Context, path models.TreePath) (models.Value, error) {
	if err := t.validator.Validate(ctx, path); err != nil {
		return models.Value{}, err
	}

	body, err := t.do(ctx, "get", resty.MethodGet, t.BuildURL(path), nil)
	if err != nil {
		return models.Value{}, err
	}

	v, err := models.ParseJSON(body)
	if err != nil {
		return models.Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return t.cipher.DecryptTree(v), nil
}

// Update implements [TreeStore] with a PATCH.
func (t *treeStore) Update(ctx context.Context, path models.TreePath, data models.Value) error {
	if err := t.validator.Validate(ctx, data, validators.FieldMapping); err != nil {
		return err
	}

	body, err := t.encryptBody(ctx, path, data)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	_, err = t.do(ctx, "update", resty.MethodPatch, t.BuildURL(path), body)
	return err
}

// Delete implements [TreeStore].
func (t *treeStore) Delete(ctx context.Context, path models.TreePath) error {
	if err := t.validator.Validate(ctx, path); err != nil {
		return err
	}

	_, err := t.do(ctx, "delete", resty.MethodDelete, t.BuildURL(path), nil)
	return err
}

func (t *treeStore) encryptBody(ctx context.Context, path models.TreePath, data models.Value) ([]byte, error) {
	if err := t.validator.Validate(ctx, path); err != nil {
		return nil, err
	}
	return json.Marshal(t.cipher.EncryptTree(data))
}
