// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fire-crypt/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldCollection targets DocumentPath.Collection.
	FieldCollection = "collection"

	// FieldDocumentID targets DocumentPath.ID.
	FieldDocumentID = "document_id"

	// FieldTreePath targets the segments of a TreePath.
	FieldTreePath = "tree_path"

	// FieldMapping requires a models.Value to be a Mapping.
	FieldMapping = "mapping"
)

// forbiddenKeyChars cannot appear in a tree store key.
const forbiddenKeyChars = ".#$[]"

// PathValidator implements [Validator] for document paths, tree paths and
// the values written to them.
type PathValidator struct {
}

// NewPathValidator constructs a new PathValidator and returns it as the
// Validator interface.
func NewPathValidator() Validator {
	return &PathValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.DocumentPath / *models.DocumentPath
//   - models.TreePath
//   - models.Value (only FieldMapping applies)
//
// Returns ErrUnsupportedType for anything else.
func (v *PathValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DocumentPath:
		return v.validateDocumentPath(value, fields...)
	case *models.DocumentPath:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDocumentPath(*value, fields...)
	case models.TreePath:
		return v.validateTreePath(value, fields...)
	case models.Value:
		return v.validateValue(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PathValidator) validateDocumentPath(path models.DocumentPath, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollection, FieldDocumentID}
	}

	for _, f := range fields {
		switch f {
		case FieldCollection:
			segments := strings.Split(strings.Trim(path.Collection, "/"), "/")
			// A collection path alternates collection/document/collection,
			// so it always has an odd number of segments.
			if len(segments)%2 == 0 {
				return fmt.Errorf("%w: %q has an even number of segments", ErrInvalidCollection, path.Collection)
			}
			for _, s := range segments {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("%w: %q has an empty segment", ErrInvalidCollection, path.Collection)
				}
			}
		case FieldDocumentID:
			if strings.TrimSpace(path.ID) == "" || strings.Contains(path.ID, "/") {
				return fmt.Errorf("%w: %q", ErrInvalidDocumentID, path.ID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PathValidator) validateTreePath(path models.TreePath, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTreePath}
	}

	for _, f := range fields {
		switch f {
		case FieldTreePath:
			for _, s := range path.Segments() {
				if s == "" {
					return fmt.Errorf("%w: %q has an empty segment", ErrInvalidTreePath, string(path))
				}
				if strings.ContainsAny(s, forbiddenKeyChars) {
					return fmt.Errorf("%w: segment %q contains one of %q", ErrInvalidTreePath, s, forbiddenKeyChars)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PathValidator) validateValue(value models.Value, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldMapping:
			if value.Kind() != models.KindMapping {
				return fmt.Errorf("%w, got %s", ErrNotMapping, value.Kind())
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
