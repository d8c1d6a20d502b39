// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-fire-crypt/models"
)

var simpleFieldPath = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z_0-9]*$`)

// quoteFieldPath backtick-quotes a field name that is not a simple identifier.
func quoteFieldPath(name string) string {
	if simpleFieldPath.MatchString(name) {
		return name
	}
	r := strings.NewReplacer("\\", "\\\\", "`", "\\`")
	return "`" + r.Replace(name) + "`"
}

// flattenFields replaces every top-level list or map of data with the text of
// its JSON, so string mode encrypts the whole container as one leaf and a read
// returns that JSON in plaintext.
func flattenFields(data models.Value) (models.Value, error) {
	pairs := data.Pairs()
	out := make([]models.Pair, len(pairs))
	for i, p := range pairs {
		v := p.Value
		switch v.Kind() {
		case models.KindSequence, models.KindMapping:
			raw, err := json.Marshal(v)
			if err != nil {
				return models.Value{}, fmt.Errorf("flatten field %q: %w", p.Key, err)
			}
			v = models.NewText(string(raw))
		}
		out[i] = models.P(p.Key, v)
	}
	return models.NewMapping(out...), nil
}

// encodeFields wraps every top-level value of an encrypted mapping as a typed
// field according to mode. In string mode data must already be flattened.
func encodeFields(data models.Value, mode models.FieldMode) (models.Value, error) {
	pairs := data.Pairs()
	fields := make([]models.Pair, 0, len(pairs))
	for _, p := range pairs {
		var field models.Value
		if mode == models.FieldModeTyped {
			field = typedField(p.Value)
		} else {
			f, err := stringField(p.Value)
			if err != nil {
				return models.Value{}, fmt.Errorf("encode field %q: %w", p.Key, err)
			}
			field = f
		}
		fields = append(fields, models.P(p.Key, field))
	}
	return models.NewMapping(fields...), nil
}

// stringField wraps a Text as stringValue and a Null as nullValue.
func stringField(v models.Value) (models.Value, error) {
	switch v.Kind() {
	case models.KindNull:
		return models.NewMapping(models.P(models.FieldNullValue, models.NewNull())), nil
	case models.KindText:
		return models.NewMapping(models.P(models.FieldStringValue, v)), nil
	default:
		return models.Value{}, fmt.Errorf("%s is not a string field", v.Kind())
	}
}

func typedField(v models.Value) models.Value {
	switch v.Kind() {
	case models.KindText:
		return models.NewMapping(models.P(models.FieldStringValue, v))
	case models.KindSequence:
		items := v.Items()
		values := make([]models.Value, len(items))
		for i, item := range items {
			values[i] = typedField(item)
		}
		return models.NewMapping(models.P(models.FieldArrayValue,
			models.NewMapping(models.P(models.ArrayValues, models.NewSequence(values...)))))
	case models.KindMapping:
		pairs := v.Pairs()
		fields := make([]models.Pair, len(pairs))
		for i, p := range pairs {
			fields[i] = models.P(p.Key, typedField(p.Value))
		}
		return models.NewMapping(models.P(models.FieldMapValue,
			models.NewMapping(models.P(models.DocumentFields, models.NewMapping(fields...)))))
	default:
		return models.NewMapping(models.P(models.FieldNullValue, models.NewNull()))
	}
}

// decodeFields unwraps the "fields" object of a document.
func decodeFields(fields models.Value) (models.Value, error) {
	if fields.Kind() != models.KindMapping {
		return models.Value{}, fmt.Errorf("%w: fields is a %s", ErrParse, fields.Kind())
	}

	pairs := fields.Pairs()
	out := make([]models.Pair, len(pairs))
	for i, p := range pairs {
		v, err := decodeField(p.Value)
		if err != nil {
			return models.Value{}, fmt.Errorf("field %q: %w", p.Key, err)
		}
		out[i] = models.P(p.Key, v)
	}
	return models.NewMapping(out...), nil
}

func decodeField(field models.Value) (models.Value, error) {
	if field.Kind() != models.KindMapping || field.Len() != 1 {
		return models.Value{}, fmt.Errorf("%w: not a typed field", ErrParse)
	}

	variant := field.Pairs()[0]
	inner := variant.Value

	switch variant.Key {
	case models.FieldNullValue:
		return models.NewNull(), nil
	case models.FieldStringValue:
		if inner.Kind() != models.KindText {
			return models.Value{}, fmt.Errorf("%w: %s is a %s", ErrParse, variant.Key, inner.Kind())
		}
		return inner, nil
	case models.FieldArrayValue:
		if inner.Kind() != models.KindMapping {
			return models.Value{}, fmt.Errorf("%w: %s is a %s", ErrParse, variant.Key, inner.Kind())
		}
		values, ok := inner.Get(models.ArrayValues)
		if !ok || values.IsNull() {
			return models.NewSequence(), nil
		}
		if values.Kind() != models.KindSequence {
			return models.Value{}, fmt.Errorf("%w: %s.%s is a %s", ErrParse, variant.Key, models.ArrayValues, values.Kind())
		}
		items := values.Items()
		out := make([]models.Value, len(items))
		for i, item := range items {
			v, err := decodeField(item)
			if err != nil {
				return models.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = v
		}
		return models.NewSequence(out...), nil
	case models.FieldMapValue:
		if inner.Kind() != models.KindMapping {
			return models.Value{}, fmt.Errorf("%w: %s is a %s", ErrParse, variant.Key, inner.Kind())
		}
		nested, ok := inner.Get(models.DocumentFields)
		if !ok || nested.IsNull() {
			return models.NewMapping(), nil
		}
		return decodeFields(nested)
	default:
		// integerValue, doubleValue, booleanValue, timestampValue and the
		// other scalar variants are kept as the text of their literal.
		if s, ok := inner.Str(); ok {
			return models.NewText(s), nil
		}
		raw, err := json.Marshal(inner)
		if err != nil {
			return models.Value{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return models.NewText(string(raw)), nil
	}
}
