// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serialize renders query results as JSON or YAML.
//
// Values returned by the Snowflake driver include types that generic encoders
// either reject or render inconsistently: calendar dates, timestamps,
// arbitrary-precision numbers and NaN floats. Every leaf is passed through
// [NormalizeScalar] before encoding.
//
// Go maps carry no insertion order, so plain maps are encoded in sorted key
// order. Use [Record] where column order matters.
//
// Traversal does not detect cycles; a self-referencing structure recurses
// until the stack is exhausted.
package serialize
