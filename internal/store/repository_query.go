// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/MKhiriev/mcp-snowflake-server/models"
	"github.com/snowflakedb/gosnowflake"
)

// queryRepository runs client-supplied SQL. It does not decide whether a
// statement is allowed; that is the caller's job.
type queryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQueryRepository constructs a [QueryRepository] backed by db.
func NewQueryRepository(db *DB, logger *logger.Logger) QueryRepository {
	logger.Debug().Msg("creating query repository")
	return &queryRepository{
		db:     db,
		logger: logger,
	}
}

// Query runs query with higher precision enabled so that NUMBER values with
// a scale are not rounded through float64.
func (r *queryRepository) Query(ctx context.Context, query string) ([]*serialize.Record, error) {
	log := logger.FromContext(ctx)
	log.Debug().Str("func", "*queryRepository.Query").Str("query", query).Msg("running query")

	rows, err := r.db.QueryContext(gosnowflake.WithHigherPrecision(ctx), query)
	if err != nil {
		log.Err(err).Str("func", "*queryRepository.Query").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		log.Err(err).Str("func", "*queryRepository.Query").Msg("error reading rows")
		return nil, err
	}
	log.Debug().Str("func", "*queryRepository.Query").Int("rows", len(records)).Msg("query finished")

	return records, nil
}

func (r *queryRepository) Exec(ctx context.Context, query string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)
	log.Debug().Str("func", "*queryRepository.Exec").Str("query", query).Msg("executing statement")

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*queryRepository.Exec").Msg("error executing statement")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*queryRepository.Exec").Msg("error reading affected rows")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.ExecResult{AffectedRows: affected}, nil
}
