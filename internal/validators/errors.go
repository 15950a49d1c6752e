// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyQuery       = errors.New("query is required")
	ErrUnknownQueryMode = errors.New("unknown query mode")
	ErrWriteNotAllowed  = errors.New("calls to read_query should not contain write operations")
	ErrSelectNotAllowed = errors.New("SELECT queries are not allowed for write_query")
	ErrNotCreateTable   = errors.New("only CREATE TABLE statements are allowed")
)
