// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QueryMode states which kind of statement a caller is allowed to run.
type QueryMode string

const (
	// ReadQuery accepts only statements without side effects.
	ReadQuery QueryMode = "read"
	// WriteQuery accepts DML and rejects plain SELECT statements.
	WriteQuery QueryMode = "write"
	// CreateTableQuery accepts only CREATE TABLE statements.
	CreateTableQuery QueryMode = "create_table"
)

// Query is a raw SQL statement submitted by an MCP client.
type Query struct {
	SQL  string
	Mode QueryMode
}

// WriteAnalysis is the outcome of scanning a statement for side effects.
type WriteAnalysis struct {
	// ContainsWrite reports whether any write operation was found.
	ContainsWrite bool `json:"contains_write"`
	// Operations lists the write keywords found, upper-cased and de-duplicated.
	Operations []string `json:"write_operations"`
	// CTEWrite reports a write hidden inside a WITH clause.
	CTEWrite bool `json:"has_cte_write"`
}

// ExecResult is the outcome of a write statement.
type ExecResult struct {
	AffectedRows int64 `json:"affected_rows"`
}
