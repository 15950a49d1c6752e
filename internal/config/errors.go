// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Resolution errors. Every error returned by this package wraps one of them,
// so callers can match the kind with [errors.Is].
var (
	// ErrNotFound indicates that the connections file does not exist.
	ErrNotFound = errors.New("connections file not found")
	// ErrMalformed indicates that the connections file cannot be parsed.
	ErrMalformed = errors.New("invalid connections file")
	// ErrMissingSection indicates that the requested connection section is
	// absent from the connections file.
	ErrMissingSection = errors.New("connection not found in connections file")
	// ErrConfiguration indicates an inconsistent combination of settings,
	// such as a connections file without a connection name.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrMissingRequiredField indicates that a required connection parameter
	// is absent after all sources were merged.
	ErrMissingRequiredField = errors.New("missing required connection parameter")
)

// MissingFieldsError lists the required parameters absent from a resolved
// [ConnectionConfig].
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	hints := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		hints = append(hints, fmt.Sprintf(
			"you must provide the %[1]s as \"--%[1]s\" argument, %[2]q environment variable, or in the connections file",
			field, EnvVarName(field),
		))
	}

	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, strings.Join(hints, "; "))
}

// Unwrap makes [MissingFieldsError] match [ErrMissingRequiredField].
func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingRequiredField
}
