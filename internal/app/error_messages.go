// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the
// firecrypt command line.
//
// All Msg* constants are human-readable strings written to stderr when a
// command fails. Keeping them in one place ensures consistent wording across
// commands.
package app

const (
	// MsgInvalidKeyMaterial is shown when the key or IV cannot be decoded or
	// has the wrong length.
	MsgInvalidKeyMaterial = "invalid key material"

	// MsgInvalidConfig is shown when the merged configuration is incomplete
	// or contradictory.
	MsgInvalidConfig = "invalid configuration"

	// MsgStoreNotConfigured is shown when a command needs a store whose
	// project id or base url is missing.
	MsgStoreNotConfigured = "store is not configured"

	// MsgInvalidJSON is shown when a value argument or stdin is not JSON.
	MsgInvalidJSON = "invalid JSON value"

	// MsgNotMapping is shown when a document or update value is not a JSON
	// object.
	MsgNotMapping = "value must be a JSON object"

	// MsgInvalidPath is shown when a collection, document id or tree path
	// is rejected before any request is sent.
	MsgInvalidPath = "invalid path"

	// MsgNotBase64 is shown when a ciphertext is not valid base64.
	MsgNotBase64 = "ciphertext is not valid base64"

	// MsgDecryptFailed is shown when a ciphertext does not decrypt under the
	// configured key.
	MsgDecryptFailed = "ciphertext does not decrypt with this key"

	// MsgUnauthorized is shown for 401 and 403 responses.
	MsgUnauthorized = "store rejected the credentials"

	// MsgNotFound is shown for 404 responses.
	MsgNotFound = "not found"

	// MsgRemoteError is shown for any other non-2xx response.
	MsgRemoteError = "store returned an error"

	// MsgUnexpectedResponse is shown when a 2xx response has an unexpected
	// body.
	MsgUnexpectedResponse = "unexpected response from store"

	// MsgInternalError is shown for anything not covered above.
	MsgInternalError = "internal error"
)
