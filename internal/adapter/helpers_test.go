// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/MKhiriev/go-fire-crypt/internal/codec"
	"github.com/MKhiriev/go-fire-crypt/internal/crypto"
	"github.com/MKhiriev/go-fire-crypt/internal/logger"
	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Key and IV of sixteen zero bytes. Ciphertexts below were produced with
// openssl enc -aes-128-cbc under the same material.
const (
	zeroKey = "AAAAAAAAAAAAAAAAAAAAAA=="

	encTest  = "qTEyaO8wodj/sAFhzipZdw=="
	encAlice = "feJIeJy0LEviXGFU5j73Ag=="
)

func newTestCipher(t *testing.T) *codec.TreeCodec {
	t.Helper()
	c, err := crypto.NewCodec(zeroKey, zeroKey)
	require.NoError(t, err)
	return codec.NewTreeCodec(c, logger.Nop())
}

func assertValueEqual(t *testing.T, want, got models.Value) {
	t.Helper()
	wantJSON, err := want.MarshalJSON()
	require.NoError(t, err)
	gotJSON, err := got.MarshalJSON()
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "want %s, got %s", wantJSON, gotJSON)
}

// recordedRequest is what a fake store saw.
type recordedRequest struct {
	Method    string
	Path      string
	Query     map[string][]string
	RequestID string
	Body      []byte
}

// recorder answers every request with a fixed status and body and keeps a
// copy of what it received.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest

	status int
	body   string
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	rec.mu.Lock()
	rec.requests = append(rec.requests, recordedRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.Query(),
		RequestID: r.Header.Get(RequestIDHeader),
		Body:      body,
	})
	rec.mu.Unlock()

	status := rec.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(rec.body))
}

func (rec *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.NotEmpty(t, rec.requests, "no request reached the fake store")
	return rec.requests[len(rec.requests)-1]
}

func (rec *recorder) count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.requests)
}
