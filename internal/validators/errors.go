// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCollection = errors.New("invalid collection path")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrInvalidTreePath   = errors.New("invalid tree path")
	ErrNotMapping        = errors.New("value must be a mapping")
)
