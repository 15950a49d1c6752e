// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sort"
)

// Names of the connection parameters that must be present after resolution.
const (
	ParamDatabase = "database"
	ParamSchema   = "schema"
)

// requiredParameters is checked in order, so error messages are stable.
var requiredParameters = []string{ParamDatabase, ParamSchema}

// ConnectionConfig maps a Snowflake connection parameter name to its value.
//
// Values coming from the environment and from inline arguments are strings;
// values loaded from a connections file keep the type of the file format
// (for example a TOML integer stays an int64).
type ConnectionConfig map[string]any

// Has reports whether key is present, regardless of its value.
func (c ConnectionConfig) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// String returns the value of key formatted as a string.
func (c ConnectionConfig) String(key string) (string, bool) {
	v, ok := c[key]
	if !ok || v == nil {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}

	return fmt.Sprint(v), true
}

// Keys returns the parameter names in sorted order.
func (c ConnectionConfig) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Clone returns a shallow copy of c.
func (c ConnectionConfig) Clone() ConnectionConfig {
	out := make(ConnectionConfig, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// Redacted returns a copy of c safe for logging: secrets are masked.
func (c ConnectionConfig) Redacted() ConnectionConfig {
	out := c.Clone()
	for _, key := range secretParameters {
		if _, ok := out[key]; ok {
			out[key] = "******"
		}
	}

	return out
}

// validate checks that every required parameter is present.
func (c ConnectionConfig) validate() error {
	var missing []string
	for _, field := range requiredParameters {
		if !c.Has(field) {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	return nil
}
