// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/MKhiriev/mcp-snowflake-server/models"
)

// catalogRepository is the Snowflake-backed implementation of
// [CatalogRepository]. Every query targets an INFORMATION_SCHEMA view.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCatalogRepository constructs a [CatalogRepository] backed by db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *catalogRepository) ListDatabases(ctx context.Context) ([]*serialize.Record, error) {
	query, args, err := buildListDatabasesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.selectRecords(ctx, "*catalogRepository.ListDatabases", query, args...)
}

func (r *catalogRepository) ListSchemas(ctx context.Context, database string) ([]*serialize.Record, error) {
	query, args, err := buildListSchemasQuery(database)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.selectRecords(ctx, "*catalogRepository.ListSchemas", query, args...)
}

func (r *catalogRepository) ListTables(ctx context.Context, database, schema string) ([]*serialize.Record, error) {
	query, args, err := buildListTablesQuery(database, schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.selectRecords(ctx, "*catalogRepository.ListTables", query, args...)
}

func (r *catalogRepository) DescribeTable(ctx context.Context, table models.TableRef) ([]*serialize.Record, error) {
	query, args, err := buildDescribeTableQuery(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.selectRecords(ctx, "*catalogRepository.DescribeTable", query, args...)
}

func (r *catalogRepository) selectRecords(ctx context.Context, funcName, query string, args ...any) ([]*serialize.Record, error) {
	log := logger.FromContext(ctx)
	log.Debug().Str("func", funcName).Str("query", query).Any("args", args).Msg("running catalog query")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing catalog query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading catalog rows")
		return nil, err
	}

	return records, nil
}
