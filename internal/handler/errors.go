// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrPrefetchTargetMissing is returned by Prefetch when the connection has no
// database or schema to describe.
var ErrPrefetchTargetMissing = errors.New("prefetch needs both database and schema in the connection config")

// errUnknownTable is returned when a context://table resource is read for a
// table that was not prefetched.
var errUnknownTable = errors.New("unknown table")
