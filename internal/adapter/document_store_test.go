// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-fire-crypt/internal/config"
	"github.com/MKhiriev/go-fire-crypt/internal/crypto"
	"github.com/MKhiriev/go-fire-crypt/internal/utils"
	"github.com/MKhiriev/go-fire-crypt/internal/validators"
	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentsPath = "/v1/projects/demo/databases/(default)/documents"

var alicePath = models.DocumentPath{Collection: "users", ID: "alice"}

func newTestDocumentStore(t *testing.T, serverURL string, mode models.FieldMode) DocumentStore {
	t.Helper()
	store, err := NewDocumentStore(config.Firestore{
		BaseURL:   serverURL + documentsPath,
		APIKey:    "api-key",
		FieldMode: mode,
	}, newTestCipher(t), nil)
	require.NoError(t, err)
	return store
}

// sentFields decodes the "fields" object of a recorded write.
func sentFields(t *testing.T, body []byte) map[string]map[string]any {
	t.Helper()
	var doc struct {
		Fields map[string]map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc.Fields
}

// ── NewDocumentStore ─────────────────────────────────────────────────────────

func TestNewDocumentStore_Config(t *testing.T) {
	cipher := newTestCipher(t)

	_, err := NewDocumentStore(config.Firestore{}, cipher, nil)
	assert.ErrorIs(t, err, config.ErrInvalidStoreConfigs)

	_, err = NewDocumentStore(config.Firestore{ProjectID: "demo", FieldMode: "blob"}, cipher, nil)
	assert.ErrorIs(t, err, config.ErrInvalidStoreConfigs)

	_, err = NewDocumentStore(config.Firestore{BaseURL: "http://"}, cipher, nil)
	assert.ErrorIs(t, err, config.ErrInvalidStoreConfigs)

	_, err = NewDocumentStore(config.Firestore{ProjectID: "demo"}, nil, nil)
	assert.Error(t, err)

	store, err := NewDocumentStore(config.Firestore{ProjectID: "demo"}, cipher, nil)
	require.NoError(t, err)
	assert.Equal(t, models.FieldModeString, store.(*documentStore).fieldMode)
	assert.Equal(t,
		"https://firestore.googleapis.com/v1/projects/demo/databases/(default)/documents/users/alice",
		store.(*documentStore).documentURL(alicePath, nil))
}

// ── Put ──────────────────────────────────────────────────────────────────────

func TestDocumentPut_EncryptsStringField(t *testing.T) {
	rec := &recorder{body: `{}`}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	err := store.Put(context.Background(), alicePath, models.NewMapping(models.P("name", models.NewText("Alice"))))
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, documentsPath+"/users/alice", req.Path)
	assert.Equal(t, []string{"api-key"}, req.Query["key"])
	assert.Equal(t, []string{"name"}, req.Query["updateMask.fieldPaths"])
	assert.NotEmpty(t, req.RequestID)

	fields := sentFields(t, req.Body)
	assert.Equal(t, map[string]map[string]any{"name": {"stringValue": encAlice}}, fields)
}

func TestDocumentPut_StringModeFlattensContainers(t *testing.T) {
	rec := &recorder{body: `{}`}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	err := store.Put(context.Background(), alicePath, models.NewMapping(
		models.P("tags", models.NewSequence(models.NewText("test"))),
		models.P("nickname", models.NewNull()),
		models.P("first name", models.NewText("Alice")),
	))
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, []string{"tags", "nickname", "`first name`"}, req.Query["updateMask.fieldPaths"])

	c, err := crypto.NewCodec(zeroKey, zeroKey)
	require.NoError(t, err)

	fields := sentFields(t, req.Body)
	assert.Equal(t, map[string]any{"stringValue": c.Encrypt(`["test"]`)}, fields["tags"])
	assert.Equal(t, map[string]any{"nullValue": nil}, fields["nickname"])
	assert.Equal(t, map[string]any{"stringValue": encAlice}, fields["first name"])
}

func TestDocumentPut_TypedModeWireShape(t *testing.T) {
	rec := &recorder{body: `{}`}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeTyped)
	err := store.Put(context.Background(), alicePath, models.NewMapping(
		models.P("tags", models.NewSequence(models.NewText("test"), models.NewNull())),
		models.P("profile", models.NewMapping(models.P("name", models.NewText("Alice")))),
	))
	require.NoError(t, err)

	want := `{"fields":{` +
		`"tags":{"arrayValue":{"values":[{"stringValue":"` + encTest + `"},{"nullValue":null}]}},` +
		`"profile":{"mapValue":{"fields":{"name":{"stringValue":"` + encAlice + `"}}}}` +
		`}}`
	assert.JSONEq(t, want, string(rec.last(t).Body))
}

func TestDocumentPut_RejectsBeforeSending(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	ctx := context.Background()

	err := store.Put(ctx, alicePath, models.NewText("Alice"))
	assert.ErrorIs(t, err, ErrNotMapping)

	err = store.Put(ctx, models.DocumentPath{Collection: "users", ID: ""}, models.NewMapping())
	assert.ErrorIs(t, err, validators.ErrInvalidDocumentID)

	err = store.Put(ctx, models.DocumentPath{Collection: "users/u1", ID: "x"}, models.NewMapping())
	assert.ErrorIs(t, err, validators.ErrInvalidCollection)

	assert.NoError(t, store.Put(ctx, alicePath, models.NewMapping()), "empty mapping is a no-op")

	assert.Zero(t, rec.count())
}

func TestDocumentPut_Forbidden(t *testing.T) {
	rec := &recorder{status: http.StatusForbidden, body: `{"error":{"code":403,"status":"PERMISSION_DENIED"}}`}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	err := store.Put(context.Background(), alicePath, models.NewMapping(models.P("name", models.NewText("Alice"))))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, ErrForbidden)

	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusForbidden, remote.StatusCode)
	assert.Contains(t, remote.Body, "PERMISSION_DENIED")
}

func TestDocumentPut_UsesRequestIDFromContext(t *testing.T) {
	rec := &recorder{body: `{}`}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	ctx := utils.WithRequestID(context.Background(), "req-42")
	require.NoError(t, store.Put(ctx, alicePath, models.NewMapping(models.P("a", models.NewText("b")))))

	assert.Equal(t, "req-42", rec.last(t).RequestID)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestDocumentGet_DecryptsFields(t *testing.T) {
	rec := &recorder{body: `{
		"name": "projects/demo/databases/(default)/documents/users/alice",
		"fields": {
			"name": {"stringValue": "` + encAlice + `"},
			"legacy": {"stringValue": "not base64!"},
			"age": {"integerValue": "42"},
			"active": {"booleanValue": true},
			"gone": {"nullValue": null}
		},
		"createTime": "2024-01-01T00:00:00Z"
	}`}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	got, err := store.Get(context.Background(), alicePath)
	require.NoError(t, err)

	assertValueEqual(t, models.NewMapping(
		models.P("name", models.NewText("Alice")),
		models.P("legacy", models.NewText("not base64!")),
		models.P("age", models.NewText("42")),
		models.P("active", models.NewText("true")),
		models.P("gone", models.NewNull()),
	), got)

	req := rec.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, documentsPath+"/users/alice", req.Path)
	assert.Equal(t, []string{"api-key"}, req.Query["key"])
}

func TestDocumentGet_MissingFields(t *testing.T) {
	rec := &recorder{body: `{"name":"projects/demo/databases/(default)/documents/users/alice"}`}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	_, err := store.Get(context.Background(), alicePath)
	assert.ErrorIs(t, err, ErrParse)
}

func TestDocumentGet_MalformedBodies(t *testing.T) {
	for _, body := range []string{
		`not json`,
		`{"fields": ["x"]}`,
		`{"fields": {"a": "plain"}}`,
		`{"fields": {"a": {"stringValue": "x", "nullValue": null}}}`,
		`{"fields": {"a": {"stringValue": ["x"]}}}`,
		`{"fields": {"a": {"arrayValue": {"values": "x"}}}}`,
	} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(&recorder{body: body})
			defer srv.Close()

			store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
			_, err := store.Get(context.Background(), alicePath)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestDocumentGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(&recorder{status: http.StatusNotFound, body: `{"error":{"code":404}}`})
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	_, err := store.Get(context.Background(), alicePath)

	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentGet_TransportError(t *testing.T) {
	srv := httptest.NewServer(&recorder{})
	url := srv.URL
	srv.Close()

	store := newTestDocumentStore(t, url, models.FieldModeString)
	_, err := store.Get(context.Background(), alicePath)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "get document request")
}

// newStoringServer is a fake document store that keeps the fields of the last
// write and serves them back on read.
func newStoringServer(t *testing.T) (*httptest.Server, func() json.RawMessage) {
	t.Helper()
	var (
		mu     sync.Mutex
		stored json.RawMessage
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodPatch:
			var doc struct {
				Fields json.RawMessage `json:"fields"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
			stored = doc.Fields
			_, _ = w.Write([]byte(`{}`))
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"name":"x","fields":` + string(stored) + `}`))
		}
	}))
	return srv, func() json.RawMessage {
		mu.Lock()
		defer mu.Unlock()
		return stored
	}
}

func TestDocument_StringRoundTrip(t *testing.T) {
	srv, stored := newStoringServer(t)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	require.NoError(t, store.Put(context.Background(), alicePath, models.NewMapping(
		models.P("n", models.NewNull()),
		models.P("tags", models.NewSequence(models.NewText("a"), models.NewText("b"))),
		models.P("profile", models.NewMapping(models.P("city", models.NewText("Zürich")))),
		models.P("name", models.NewText("Alice")),
	)))

	// nothing readable leaves the process
	assert.NotContains(t, string(stored()), `"a"`)
	assert.NotContains(t, string(stored()), "Zürich")

	got, err := store.Get(context.Background(), alicePath)
	require.NoError(t, err)
	assertValueEqual(t, models.NewMapping(
		models.P("n", models.NewNull()),
		models.P("tags", models.NewText(`["a","b"]`)),
		models.P("profile", models.NewText(`{"city":"Zürich"}`)),
		models.P("name", models.NewText("Alice")),
	), got)
}

// TestDocument_TypedRoundTrip writes through a fake store that keeps the last
// written fields and serves them back.
func TestDocument_TypedRoundTrip(t *testing.T) {
	srv, _ := newStoringServer(t)
	defer srv.Close()

	data := models.NewMapping(
		models.P("name", models.NewText("Alice")),
		models.P("tags", models.NewSequence(models.NewText("a"), models.NewNull(), models.NewSequence())),
		models.P("address", models.NewMapping(
			models.P("city", models.NewText("Zürich")),
			models.P("lines", models.NewSequence(models.NewText("1"), models.NewText("2"))),
			models.P("empty", models.NewMapping()),
		)),
		models.P("note", models.NewNull()),
	)

	store := newTestDocumentStore(t, srv.URL, models.FieldModeTyped)
	require.NoError(t, store.Put(context.Background(), alicePath, data))

	got, err := store.Get(context.Background(), alicePath)
	require.NoError(t, err)
	assertValueEqual(t, data, got)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDocumentDelete_Success(t *testing.T) {
	rec := &recorder{body: `{}`}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	store := newTestDocumentStore(t, srv.URL, models.FieldModeString)
	require.NoError(t, store.Delete(context.Background(), models.DocumentPath{Collection: "users/u1/orders", ID: "o 1"}))

	req := rec.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, documentsPath+"/users/u1/orders/o 1", req.Path)
}

// ── quoteFieldPath ───────────────────────────────────────────────────────────

func TestQuoteFieldPath(t *testing.T) {
	assert.Equal(t, "name", quoteFieldPath("name"))
	assert.Equal(t, "_id2", quoteFieldPath("_id2"))
	assert.Equal(t, "`2fa`", quoteFieldPath("2fa"))
	assert.Equal(t, "`a.b`", quoteFieldPath("a.b"))
	assert.Equal(t, "`tick\\`s`", quoteFieldPath("tick`s"))
	assert.Equal(t, "`back\\\\slash`", quoteFieldPath(`back\slash`))
}
