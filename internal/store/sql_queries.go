// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/mcp-snowflake-server/models"
	sq "github.com/Masterminds/squirrel"
)

const informationSchema = "INFORMATION_SCHEMA"

// identifierPattern matches an unquoted Snowflake identifier or a
// double-quoted one with "" as the escaped quote.
var identifierPattern = regexp.MustCompile(`^(?:[A-Za-z_][A-Za-z0-9_$]*|"(?:[^"]|"")+")$`)

func buildListDatabasesQuery() (string, []any, error) {
	return sq.Select("DATABASE_NAME").
		From(informationSchema + ".DATABASES").
		ToSql()
}

func buildListSchemasQuery(database string) (string, []any, error) {
	from, err := informationSchemaView(database, "SCHEMATA")
	if err != nil {
		return "", nil, err
	}

	return sq.Select("SCHEMA_NAME").
		From(from).
		ToSql()
}

func buildListTablesQuery(database, schema string) (string, []any, error) {
	from, err := informationSchemaView(database, "TABLES")
	if err != nil {
		return "", nil, err
	}
	schemaName, err := identifierValue(schema)
	if err != nil {
		return "", nil, err
	}

	return sq.Select("TABLE_CATALOG", "TABLE_SCHEMA", "TABLE_NAME", "COMMENT").
		From(from).
		Where(sq.Eq{"TABLE_SCHEMA": schemaName}).
		ToSql()
}

func buildDescribeTableQuery(table models.TableRef) (string, []any, error) {
	from, err := informationSchemaView(table.Database, "COLUMNS")
	if err != nil {
		return "", nil, err
	}
	schemaName, err := identifierValue(table.Schema)
	if err != nil {
		return "", nil, err
	}
	tableName, err := identifierValue(table.Table)
	if err != nil {
		return "", nil, err
	}

	return sq.Select("COLUMN_NAME", "COLUMN_DEFAULT", "IS_NULLABLE", "DATA_TYPE", "COMMENT").
		From(from).
		Where(sq.Eq{"TABLE_SCHEMA": schemaName}).
		Where(sq.Eq{"TABLE_NAME": tableName}).
		OrderBy("ORDINAL_POSITION").
		ToSql()
}

// informationSchemaView returns <database>.INFORMATION_SCHEMA.<view>.
// The database name is spliced into the statement, so it must be a valid
// identifier.
func informationSchemaView(database, view string) (string, error) {
	if !identifierPattern.MatchString(database) {
		return "", fmt.Errorf("%w: database %q", ErrInvalidIdentifier, database)
	}
	return database + "." + informationSchema + "." + view, nil
}

// identifierValue converts an identifier to the form stored in
// INFORMATION_SCHEMA: unquoted names are upper-cased, quoted names keep their
// case and lose the quotes.
func identifierValue(name string) (string, error) {
	if !identifierPattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	if strings.HasPrefix(name, `"`) {
		return strings.ReplaceAll(name[1:len(name)-1], `""`, `"`), nil
	}
	return strings.ToUpper(name), nil
}
