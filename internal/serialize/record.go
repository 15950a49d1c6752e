// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is a string-keyed map that remembers insertion order. It is used
// for result rows, so columns are rendered in the order the query returned
// them.
//
// The zero value is not usable; create records with [NewRecord].
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty Record with room for size keys.
func NewRecord(size int) *Record {
	return &Record{
		keys:   make([]string, 0, size),
		values: make(map[string]any, size),
	}
}

// Set stores value under key. A key that is already present keeps its
// position.
func (r *Record) Set(key string, value any) *Record {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value

	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)

	return out
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// MarshalJSON encodes the record as a JSON object with keys in insertion
// order. Values are encoded as they are; use [ToJSON] for normalization.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := marshalJSONValue(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := marshalJSONValue(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("error encoding field %q: %w", key, err)
		}
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a mapping with keys in insertion order
// and normalized values.
func (r *Record) MarshalYAML() (any, error) {
	return toNode(normalize(r))
}

func marshalJSONValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

var (
	_ json.Marshaler = (*Record)(nil)
	_ yaml.Marshaler = (*Record)(nil)
)
