// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Connection errors returned while opening the database.
var (
	// ErrInvalidConnectionConfig is returned when the resolved connection
	// parameters cannot be turned into a valid gosnowflake configuration.
	ErrInvalidConnectionConfig = errors.New("invalid snowflake connection config")

	// ErrConnectingDatabase is returned when the initial ping fails.
	ErrConnectingDatabase = errors.New("error connecting snowflake")

	// ErrReadingPrivateKey is returned when private_key_file cannot be read
	// or parsed as an unencrypted PKCS#8 or PKCS#1 RSA key.
	ErrReadingPrivateKey = errors.New("error reading private key")
)

// Query errors returned by repository methods.
var (
	// ErrInvalidIdentifier is returned when a database, schema or table
	// name is neither a plain nor a double-quoted Snowflake identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a row-returning statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when a statement without a result
	// set fails.
	ErrExecutingStatement = errors.New("error executing statement")

	// ErrScanningRow is returned when reading a row into memory fails.
	ErrScanningRow = errors.New("error scanning row")
)
