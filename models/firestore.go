// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Typed-field variant names of the document store wire format. A typed field
// is a JSON object with exactly one of these keys.
const (
	FieldStringValue    = "stringValue"
	FieldNullValue      = "nullValue"
	FieldArrayValue     = "arrayValue"
	FieldMapValue       = "mapValue"
	FieldIntegerValue   = "integerValue"
	FieldDoubleValue    = "doubleValue"
	FieldBooleanValue   = "booleanValue"
	FieldTimestampValue = "timestampValue"
)

// Document store envelope keys.
const (
	// DocumentFields holds the typed-field object of a document and of a
	// mapValue.
	DocumentFields = "fields"
	// ArrayValues holds the element list of an arrayValue.
	ArrayValues = "values"
)

// FieldMode selects how the document store adapter wraps values on write.
type FieldMode string

const (
	// FieldModeString wraps every top-level value as a stringValue. Nested
	// containers are written as the JSON text of their encrypted form. This
	// is the wire format already used by existing encrypted documents.
	FieldModeString FieldMode = "string"

	// FieldModeTyped maps all four value kinds onto their typed-field
	// counterparts (nullValue, stringValue, arrayValue, mapValue) recursively.
	FieldModeTyped FieldMode = "typed"
)

// PushResponse is the body returned by the tree store for an append write.
type PushResponse struct {
	// Name is the child key generated by the store.
	Name string `json:"name"`
}
