// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryRepository_Query(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewQueryRepository(db, logger.Nop())

	placed := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	shipped := time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("ID").OfType("FIXED", int64(0)),
		sqlmock.NewColumn("PLACED_ON").OfType("DATE", time.Time{}),
		sqlmock.NewColumn("SHIPPED_AT").OfType("TIMESTAMP_NTZ", time.Time{}),
		sqlmock.NewColumn("UPDATED_AT").OfType("TIMESTAMP_TZ", time.Time{}),
		sqlmock.NewColumn("NOTE").OfType("TEXT", ""),
	).AddRow(int64(7), placed, shipped, shipped, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ORDERS")).WillReturnRows(rows)

	records, err := repo.Query(context.Background(), "SELECT * FROM ORDERS")
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, []string{"ID", "PLACED_ON", "SHIPPED_AT", "UPDATED_AT", "NOTE"}, record.Keys())

	id, _ := record.Get("ID")
	assert.Equal(t, int64(7), id)
	placedOn, _ := record.Get("PLACED_ON")
	assert.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 5}, placedOn)
	shippedAt, _ := record.Get("SHIPPED_AT")
	assert.Equal(t, civil.DateTimeOf(shipped), shippedAt)
	updatedAt, _ := record.Get("UPDATED_AT")
	assert.Equal(t, shipped, updatedAt)

	out, err := serialize.ToYAML(records)
	require.NoError(t, err)
	assert.Contains(t, out, `PLACED_ON: "2024-03-05"`)
	assert.Contains(t, out, "NOTE: null")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRepository_QueryEmptyResult(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewQueryRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnRows(textRows("A"))

	records, err := repo.Query(context.Background(), "SELECT A FROM T WHERE 1 = 0")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestQueryRepository_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewQueryRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("SQL compilation error"))

	_, err := repo.Query(context.Background(), "SELECT nope")
	require.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRepository_Exec(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewQueryRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ORDERS SET STATUS = 'shipped'")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	result, err := repo.Exec(context.Background(), "UPDATE ORDERS SET STATUS = 'shipped'")
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.AffectedRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRepository_ExecErrors(t *testing.T) {
	t.Run("statement fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewQueryRepository(db, logger.Nop())
		mock.ExpectExec("DELETE").WillReturnError(errors.New("insufficient privileges"))

		_, err := repo.Exec(context.Background(), "DELETE FROM ORDERS")
		require.ErrorIs(t, err, ErrExecutingStatement)
	})

	t.Run("affected rows unavailable", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewQueryRepository(db, logger.Nop())
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewErrorResult(errors.New("no rows affected")))

		_, err := repo.Exec(context.Background(), "CREATE TABLE T (ID INT)")
		require.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestColumnValue(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)

	tests := []struct {
		name         string
		databaseType string
		value        any
		want         any
	}{
		{name: "date", databaseType: "DATE", value: ts, want: civil.DateOf(ts)},
		{name: "lower-case type name", databaseType: "date", value: ts, want: civil.DateOf(ts)},
		{name: "time", databaseType: "TIME", value: ts, want: civil.TimeOf(ts)},
		{name: "timestamp without zone", databaseType: "TIMESTAMP_NTZ", value: ts, want: civil.DateTimeOf(ts)},
		{name: "timestamp with zone", databaseType: "TIMESTAMP_LTZ", value: ts, want: ts},
		{name: "non-time value", databaseType: "DATE", value: "2024-01-02", want: "2024-01-02"},
		{name: "null", databaseType: "DATE", value: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, columnValue(tt.databaseType, tt.value))
		})
	}
}
