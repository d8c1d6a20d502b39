// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// FailureKind classifies why a decryption attempt did not produce plaintext.
type FailureKind uint8

const (
	// FailureNone means decryption succeeded.
	FailureNone FailureKind = iota
	// FailureMalformedInput means the input was not valid base64.
	FailureMalformedInput
	// FailureCipher means the bytes did not decrypt under the key.
	FailureCipher
)

// String returns a short name for the kind, suitable for log fields.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureMalformedInput:
		return "malformed_input"
	case FailureCipher:
		return "cipher"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error matching the kind, or nil for FailureNone.
func (k FailureKind) Err() error {
	switch k {
	case FailureNone:
		return nil
	case FailureMalformedInput:
		return ErrMalformedInput
	default:
		return ErrCipher
	}
}

// DecryptResult is the outcome of [Codec.TryDecrypt]. Text is only
// meaningful when OK reports true.
type DecryptResult struct {
	Text    string
	Failure FailureKind
}

// OK reports whether decryption succeeded.
func (r DecryptResult) OK() bool {
	return r.Failure == FailureNone
}

func decrypted(text string) DecryptResult {
	return DecryptResult{Text: text}
}

func failed(kind FailureKind) DecryptResult {
	return DecryptResult{Failure: kind}
}
