// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/MKhiriev/mcp-snowflake-server/internal/validators"
	"github.com/MKhiriev/mcp-snowflake-server/models"
)

// DataServiceWrapper defines middleware composition for DataService.
// Implementations wrap an existing DataService to add behavior such as
// validation.
type DataServiceWrapper interface {
	Wrap(DataService) DataService // returns a decorated DataService applying additional behavior
}

// DataValidationService checks every raw statement against the rules of the
// tool it arrived through before delegating to the wrapped DataService.
type DataValidationService struct {
	inner     DataService
	validator validators.Validator
}

func NewDataValidationService() DataServiceWrapper {
	return &DataValidationService{
		validator: validators.NewQueryValidator(),
	}
}

func (v *DataValidationService) ListDatabases(ctx context.Context) ([]*serialize.Record, error) {
	return v.inner.ListDatabases(ctx)
}

func (v *DataValidationService) ListSchemas(ctx context.Context, database string) ([]*serialize.Record, error) {
	return v.inner.ListSchemas(ctx, database)
}

func (v *DataValidationService) ListTables(ctx context.Context, database, schema string) ([]*serialize.Record, error) {
	return v.inner.ListTables(ctx, database, schema)
}

func (v *DataValidationService) DescribeTable(ctx context.Context, tableName string) ([]*serialize.Record, error) {
	return v.inner.DescribeTable(ctx, tableName)
}

func (v *DataValidationService) ReadQuery(ctx context.Context, query string) ([]*serialize.Record, error) {
	if err := v.validate(ctx, query, models.ReadQuery); err != nil {
		return nil, err
	}
	return v.inner.ReadQuery(ctx, query)
}

func (v *DataValidationService) WriteQuery(ctx context.Context, query string) (models.ExecResult, error) {
	if err := v.validate(ctx, query, models.WriteQuery); err != nil {
		return models.ExecResult{}, err
	}
	return v.inner.WriteQuery(ctx, query)
}

func (v *DataValidationService) CreateTable(ctx context.Context, query string) (models.ExecResult, error) {
	if err := v.validate(ctx, query, models.CreateTableQuery); err != nil {
		return models.ExecResult{}, err
	}
	return v.inner.CreateTable(ctx, query)
}

func (v *DataValidationService) PrefetchTables(ctx context.Context, database, schema string) ([]*serialize.Record, error) {
	return v.inner.PrefetchTables(ctx, database, schema)
}

func (v *DataValidationService) Wrap(wrapped DataService) DataService {
	v.inner = wrapped
	return v
}

func (v *DataValidationService) validate(ctx context.Context, query string, mode models.QueryMode) error {
	if err := v.validator.Validate(ctx, models.Query{SQL: query, Mode: mode}); err != nil {
		return fmt.Errorf("error during %s query validation: %w", mode, err)
	}
	return nil
}
