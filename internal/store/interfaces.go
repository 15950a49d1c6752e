// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
package store

import (
	"context"

	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/MKhiriev/mcp-snowflake-server/models"
)

// CatalogRepository reads object metadata from INFORMATION_SCHEMA views.
type CatalogRepository interface {
	// ListDatabases returns one record per database visible to the role.
	ListDatabases(ctx context.Context) ([]*serialize.Record, error)

	// ListSchemas returns the schemas of database.
	ListSchemas(ctx context.Context, database string) ([]*serialize.Record, error)

	// ListTables returns catalog, schema, name and comment of every table
	// in database.schema.
	ListTables(ctx context.Context, database, schema string) ([]*serialize.Record, error)

	// DescribeTable returns one record per column of the table, in ordinal
	// position order.
	DescribeTable(ctx context.Context, table models.TableRef) ([]*serialize.Record, error)
}

// QueryRepository runs raw SQL statements.
type QueryRepository interface {
	// Query runs a row-returning statement.
	Query(ctx context.Context, query string) ([]*serialize.Record, error)

	// Exec runs a statement without a result set.
	Exec(ctx context.Context, query string) (models.ExecResult, error)
}
