// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
package service

import (
	"context"

	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/MKhiriev/mcp-snowflake-server/models"
)

// DataService answers the database tools of the MCP server.
type DataService interface {
	ListDatabases(ctx context.Context) ([]*serialize.Record, error)
	ListSchemas(ctx context.Context, database string) ([]*serialize.Record, error)
	ListTables(ctx context.Context, database, schema string) ([]*serialize.Record, error)

	// DescribeTable takes a fully qualified "database.schema.table" name.
	DescribeTable(ctx context.Context, tableName string) ([]*serialize.Record, error)

	ReadQuery(ctx context.Context, query string) ([]*serialize.Record, error)
	WriteQuery(ctx context.Context, query string) (models.ExecResult, error)
	CreateTable(ctx context.Context, query string) (models.ExecResult, error)

	// PrefetchTables returns one record per table of database.schema with
	// the keys TABLE_NAME, COMMENT and COLUMNS.
	PrefetchTables(ctx context.Context, database, schema string) ([]*serialize.Record, error)
}

// InsightsService keeps the data insights memo of the current session.
type InsightsService interface {
	AppendInsight(ctx context.Context, text string) (models.Insight, error)
	Insights(ctx context.Context) []models.Insight
	Memo(ctx context.Context) string
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
