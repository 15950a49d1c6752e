// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/mcp-snowflake-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryValidator_Validate(t *testing.T) {
	v := NewQueryValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{name: "read select", input: models.Query{SQL: "SELECT 1", Mode: models.ReadQuery}},
		{name: "read pointer", input: &models.Query{SQL: "SHOW DATABASES", Mode: models.ReadQuery}},
		{name: "bare string is read", input: "SELECT * FROM orders"},
		{name: "bare string write", input: "DELETE FROM orders", wantErr: ErrWriteNotAllowed},
		{name: "read with write", input: models.Query{SQL: "DROP TABLE orders", Mode: models.ReadQuery}, wantErr: ErrWriteNotAllowed},
		{name: "empty sql", input: models.Query{SQL: "  \n", Mode: models.ReadQuery}, wantErr: ErrEmptyQuery},
		{name: "write insert", input: models.Query{SQL: "INSERT INTO t VALUES (1)", Mode: models.WriteQuery}},
		{name: "write select", input: models.Query{SQL: "select * from t", Mode: models.WriteQuery}, wantErr: ErrSelectNotAllowed},
		{name: "write select after comment", input: models.Query{SQL: "-- note\n  SELECT 1", Mode: models.WriteQuery}, wantErr: ErrSelectNotAllowed},
		{name: "create table", input: models.Query{SQL: "CREATE TABLE t (id INT)", Mode: models.CreateTableQuery}},
		{name: "create or replace transient", input: models.Query{SQL: "create or replace transient table t (id int)", Mode: models.CreateTableQuery}},
		{name: "create table after comment", input: models.Query{SQL: "/* ddl */\nCREATE TABLE t (id INT)", Mode: models.CreateTableQuery}},
		{name: "create view", input: models.Query{SQL: "CREATE VIEW v AS SELECT 1", Mode: models.CreateTableQuery}, wantErr: ErrNotCreateTable},
		{name: "create tables prefix", input: models.Query{SQL: "CREATE TABLESPACE x", Mode: models.CreateTableQuery}, wantErr: ErrNotCreateTable},
		{name: "drop as create", input: models.Query{SQL: "DROP TABLE t", Mode: models.CreateTableQuery}, wantErr: ErrNotCreateTable},
		{name: "unknown mode", input: models.Query{SQL: "SELECT 1", Mode: "admin"}, wantErr: ErrUnknownQueryMode},
		{name: "unsupported type", input: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQueryValidator_WriteErrorNamesOperations(t *testing.T) {
	err := NewQueryValidator().Validate(context.Background(), "SELECT 1; DROP TABLE a; DELETE FROM b")

	require.ErrorIs(t, err, ErrWriteNotAllowed)
	assert.Contains(t, err.Error(), "DROP, DELETE")
}

func TestQueryValidator_Fields(t *testing.T) {
	v := NewQueryValidator()
	ctx := context.Background()

	t.Run("only sql", func(t *testing.T) {
		err := v.Validate(ctx, models.Query{SQL: "SELECT 1", Mode: "bogus"}, FieldSQL)
		require.NoError(t, err)
	})

	t.Run("only mode", func(t *testing.T) {
		err := v.Validate(ctx, models.Query{SQL: "", Mode: "bogus"}, FieldMode)
		require.ErrorIs(t, err, ErrUnknownQueryMode)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.Query{SQL: "SELECT 1", Mode: models.ReadQuery}, "owner")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}
