// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// FromAny converts an arbitrary Go value into a [Value].
//
// nil and nil pointers become Null, strings become Text, slices and arrays
// become Sequence, maps with string keys become Mapping (keys sorted, since Go
// maps carry no order). Any other concrete type is converted to Text using its
// canonical string form: strconv formatting for numbers and booleans,
// RFC 3339 with nanoseconds for time.Time, String() for fmt.Stringer and
// fmt.Sprint for everything else.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return NewNull()
	case Value:
		return t
	case *Value:
		if t == nil {
			return NewNull()
		}
		return *t
	case string:
		return NewText(t)
	case []byte:
		return NewText(string(t))
	case bool:
		return NewText(strconv.FormatBool(t))
	case int:
		return NewText(strconv.FormatInt(int64(t), 10))
	case int8:
		return NewText(strconv.FormatInt(int64(t), 10))
	case int16:
		return NewText(strconv.FormatInt(int64(t), 10))
	case int32:
		return NewText(strconv.FormatInt(int64(t), 10))
	case int64:
		return NewText(strconv.FormatInt(t, 10))
	case uint:
		return NewText(strconv.FormatUint(uint64(t), 10))
	case uint8:
		return NewText(strconv.FormatUint(uint64(t), 10))
	case uint16:
		return NewText(strconv.FormatUint(uint64(t), 10))
	case uint32:
		return NewText(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return NewText(strconv.FormatUint(t, 10))
	case float32:
		return NewText(strconv.FormatFloat(float64(t), 'f', -1, 32))
	case float64:
		return NewText(strconv.FormatFloat(t, 'f', -1, 64))
	case json.Number:
		return NewText(t.String())
	case time.Time:
		return NewText(t.Format(time.RFC3339Nano))
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return NewSequence(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]Pair, len(keys))
		for i, k := range keys {
			pairs[i] = P(k, FromAny(t[k]))
		}
		return NewMapping(pairs...)
	case fmt.Stringer:
		return NewText(t.String())
	}

	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NewNull()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return NewNull()
		}
		fallthrough
	case reflect.Array:
		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = FromAny(rv.Index(i).Interface())
		}
		return NewSequence(items...)
	case reflect.Map:
		if rv.IsNil() {
			return NewNull()
		}
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		pairs := make([]Pair, len(keys))
		for i, k := range keys {
			mv := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			pairs[i] = P(k, FromAny(mv.Interface()))
		}
		return NewMapping(pairs...)
	case reflect.String:
		return NewText(rv.String())
	}

	return NewText(fmt.Sprint(rv.Interface()))
}
