// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fire-crypt/internal/validators"
)

var (
	// ErrRemote matches every non-2xx response of either store.
	ErrRemote = errors.New("remote store error")

	// Status-specific sentinels. A *RemoteError unwraps to at most one of
	// them, so callers can branch on errors.Is without inspecting codes.
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrParse is returned when a 2xx response body does not have the
	// expected shape.
	ErrParse = errors.New("unexpected response body")

	// ErrNoKey is returned when an append write response carries no
	// generated key.
	ErrNoKey = errors.New("response has no generated key")

	// ErrNotMapping is returned when an operation that writes named fields
	// receives anything but a mapping.
	ErrNotMapping = validators.ErrNotMapping

	errNilCipher = errors.New("adapter requires a tree cipher")
)

// RemoteError carries the status code and raw body of a non-2xx response.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote store returned %d", e.StatusCode)
	}
	return fmt.Sprintf("remote store returned %d: %s", e.StatusCode, e.Body)
}

// Is reports true for ErrRemote.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// Unwrap returns the status sentinel for the code, or nil when there is none.
func (e *RemoteError) Unwrap() error {
	return statusSentinels[e.StatusCode]
}
