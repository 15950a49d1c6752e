// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTableName is returned by ParseTableName when the name is not a
// fully qualified "database.schema.table" reference.
var ErrInvalidTableName = errors.New("table name must be fully qualified as 'database.schema.table'")

// TableRef identifies a table by its fully qualified name.
type TableRef struct {
	Database string `json:"database"`
	Schema   string `json:"schema"`
	Table    string `json:"table"`
}

// ParseTableName splits "database.schema.table" into a TableRef.
// Quoted identifiers containing dots are not supported.
func ParseTableName(name string) (TableRef, error) {
	parts := strings.Split(strings.TrimSpace(name), ".")
	if len(parts) != 3 {
		return TableRef{}, fmt.Errorf("%w: got %q", ErrInvalidTableName, name)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return TableRef{}, fmt.Errorf("%w: got %q", ErrInvalidTableName, name)
		}
	}

	return TableRef{Database: parts[0], Schema: parts[1], Table: parts[2]}, nil
}

// String returns the fully qualified name.
func (t TableRef) String() string {
	return t.Database + "." + t.Schema + "." + t.Table
}
