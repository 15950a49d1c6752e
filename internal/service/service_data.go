// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/MKhiriev/mcp-snowflake-server/internal/store"
	"github.com/MKhiriev/mcp-snowflake-server/models"
)

// dataService delegates to the store. It performs no statement checks; wrap
// it with NewDataValidationService before exposing it to clients.
type dataService struct {
	catalog store.CatalogRepository
	queries store.QueryRepository

	logger *logger.Logger
}

func NewDataService(storages *store.Storages, logger *logger.Logger) DataService {
	return &dataService{
		catalog: storages.CatalogRepository,
		queries: storages.QueryRepository,
		logger:  logger,
	}
}

func (s *dataService) ListDatabases(ctx context.Context) ([]*serialize.Record, error) {
	return s.catalog.ListDatabases(ctx)
}

func (s *dataService) ListSchemas(ctx context.Context, database string) ([]*serialize.Record, error) {
	if database == "" {
		return nil, ErrEmptyDatabase
	}
	return s.catalog.ListSchemas(ctx, database)
}

func (s *dataService) ListTables(ctx context.Context, database, schema string) ([]*serialize.Record, error) {
	if database == "" {
		return nil, ErrEmptyDatabase
	}
	if schema == "" {
		return nil, ErrEmptySchema
	}
	return s.catalog.ListTables(ctx, database, schema)
}

func (s *dataService) DescribeTable(ctx context.Context, tableName string) ([]*serialize.Record, error) {
	table, err := models.ParseTableName(tableName)
	if err != nil {
		return nil, err
	}
	return s.catalog.DescribeTable(ctx, table)
}

func (s *dataService) ReadQuery(ctx context.Context, query string) ([]*serialize.Record, error) {
	return s.queries.Query(ctx, query)
}

func (s *dataService) WriteQuery(ctx context.Context, query string) (models.ExecResult, error) {
	return s.queries.Exec(ctx, query)
}

func (s *dataService) CreateTable(ctx context.Context, query string) (models.ExecResult, error) {
	return s.queries.Exec(ctx, query)
}

// PrefetchTables describes every table of database.schema. A table whose
// columns cannot be read fails the whole prefetch.
func (s *dataService) PrefetchTables(ctx context.Context, database, schema string) ([]*serialize.Record, error) {
	log := logger.FromContext(ctx)

	tables, err := s.ListTables(ctx, database, schema)
	if err != nil {
		return nil, fmt.Errorf("error listing tables for prefetch: %w", err)
	}

	contexts := make([]*serialize.Record, 0, len(tables))
	for _, table := range tables {
		name, _ := table.Get("TABLE_NAME")
		tableName := fmt.Sprint(name)
		comment, _ := table.Get("COMMENT")

		columns, err := s.catalog.DescribeTable(ctx, models.TableRef{
			Database: database,
			Schema:   schema,
			Table:    quoteIdentifier(tableName),
		})
		if err != nil {
			log.Err(err).Str("func", "*dataService.PrefetchTables").Str("table", tableName).Msg("error describing table")
			return nil, fmt.Errorf("error describing table %s: %w", tableName, err)
		}

		contexts = append(contexts, serialize.NewRecord(3).
			Set("TABLE_NAME", tableName).
			Set("COMMENT", comment).
			Set("COLUMNS", columns))
	}
	log.Info().Str("func", "*dataService.PrefetchTables").Int("tables", len(contexts)).Msg("prefetched table descriptions")

	return contexts, nil
}
