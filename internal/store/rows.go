// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
)

// scanRecords reads all rows into records keyed by column name, in column
// order. Date and time columns lose the parts Snowflake does not store.
func scanRecords(rows *sql.Rows) ([]*serialize.Record, error) {
	columns, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	records := make([]*serialize.Record, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		record := serialize.NewRecord(len(columns))
		for i, column := range columns {
			record.Set(column.Name(), columnValue(column.DatabaseTypeName(), values[i]))
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return records, nil
}

// columnValue narrows driver values whose Go type is wider than the column.
func columnValue(databaseType string, value any) any {
	t, ok := value.(time.Time)
	if !ok {
		return value
	}

	switch strings.ToUpper(databaseType) {
	case "DATE":
		return civil.DateOf(t)
	case "TIME":
		return civil.TimeOf(t)
	case "TIMESTAMP_NTZ":
		return civil.DateTimeOf(t)
	default:
		return t
	}
}
