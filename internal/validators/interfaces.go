// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators decides whether a client-supplied SQL statement may run
// through a given MCP tool.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values, optionally
//     scoped to named fields.
//   - AnalyzeQuery: write detection used by the read-only tool.
//
// Validators are injected into services, so transports never inspect SQL
// themselves.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
