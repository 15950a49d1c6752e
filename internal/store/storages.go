// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/mcp-snowflake-server/internal/config"
	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
)

// Storages groups the repositories sharing one Snowflake connection pool.
type Storages struct {
	CatalogRepository CatalogRepository
	QueryRepository   QueryRepository

	db *DB
}

// NewStorages connects to Snowflake with the resolved connection parameters
// and builds all repositories on top of the connection.
func NewStorages(ctx context.Context, params config.ConnectionConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSnowflake(ctx, params, log)
	if err != nil {
		return nil, err
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CatalogRepository: NewCatalogRepository(db, log),
		QueryRepository:   NewQueryRepository(db, log),
		db:                db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
