// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyInsight  = errors.New("insight text is required")
	ErrEmptyDatabase = errors.New("database is required")
	ErrEmptySchema   = errors.New("schema is required")
)
