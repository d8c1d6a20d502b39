// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	// KindNull is the zero Kind. A zero [Value] is Null.
	KindNull Kind = iota
	// KindText is a string leaf. Text leaves are the only values that are
	// ever encrypted.
	KindText
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a key-ordered map of string keys to values.
	KindMapping
)

// String returns a lower-case name of the kind, used in logs and errors.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Pair is a single key/value entry of a Mapping.
type Pair struct {
	Key   string
	Value Value
}

// P is shorthand for Pair{Key: key, Value: v}.
func P(key string, v Value) Pair {
	return Pair{Key: key, Value: v}
}

// Value is the closed recursive value type that the encryption engine walks:
// Null, Text, Sequence or Mapping. Every other concrete type is converted to
// Text at the boundary by [FromAny] or by JSON decoding.
//
// Values are immutable once built; accessors return copies of the internal
// slices so callers cannot alter a shared tree.
type Value struct {
	kind  Kind
	text  string
	items []Value
	pairs []Pair
}

// NewNull returns the Null value. It is equal to the zero Value.
func NewNull() Value {
	return Value{}
}

// NewText returns a Text leaf holding s.
func NewText(s string) Value {
	return Value{kind: KindText, text: s}
}

// NewSequence returns a Sequence holding items in order.
func NewSequence(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindSequence, items: cp}
}

// NewMapping returns a Mapping holding pairs in order. When a key repeats,
// the later value replaces the earlier one in the earlier position.
func NewMapping(pairs ...Pair) Value {
	out := make([]Pair, 0, len(pairs))
	index := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if i, ok := index[p.Key]; ok {
			out[i].Value = p.Value
			continue
		}
		index[p.Key] = len(out)
		out = append(out, p)
	}
	return Value{kind: KindMapping, pairs: out}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string of a Text leaf. ok is false for every other kind.
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Items returns a copy of the elements of a Sequence, or nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Pairs returns a copy of the entries of a Mapping in order, or nil for
// other kinds.
func (v Value) Pairs() []Pair {
	if v.kind != KindMapping {
		return nil
	}
	cp := make([]Pair, len(v.pairs))
	copy(cp, v.pairs)
	return cp
}

// Keys returns the keys of a Mapping in order.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	keys := make([]string, len(v.pairs))
	for i, p := range v.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Get looks up key in a Mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	for _, p := range v.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of elements of a Sequence or entries of a Mapping,
// and zero for leaves.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.pairs)
	default:
		return 0
	}
}

// Equal reports whether v and other have the same shape, order and leaves.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindText:
		return v.text == other.text
	case KindSequence:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.pairs) != len(other.pairs) {
			return false
		}
		for i := range v.pairs {
			if v.pairs[i].Key != other.pairs[i].Key || !v.pairs[i].Value.Equal(other.pairs[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
