// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/mcp-snowflake-server/internal/config"
	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/snowflakedb/gosnowflake"
)

const (
	driverName   = "snowflake"
	maxOpenConns = 4
)

// DB wraps the Snowflake connection pool.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSnowflake opens a connection pool for params and pings it.
func NewConnectSnowflake(ctx context.Context, params config.ConnectionConfig, log *logger.Logger) (*DB, error) {
	cfg, err := newSnowflakeConfig(params)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSnowflake").Msg("error building snowflake config")
		return nil, err
	}

	dsn, err := gosnowflake.DSN(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSnowflake").Msg("error building snowflake dsn")
		return nil, fmt.Errorf("%w: %w", ErrInvalidConnectionConfig, err)
	}

	// establish connection
	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSnowflake").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	conn.SetMaxOpenConns(maxOpenConns)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSnowflake").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().
		Str("func", "NewConnectSnowflake").
		Str("account", cfg.Account).
		Str("database", cfg.Database).
		Str("schema", cfg.Schema).
		Msg("connected to snowflake successfully")

	return &DB{DB: conn, logger: log}, nil
}
