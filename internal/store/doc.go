// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the Snowflake persistence layer.
//
// A single *sql.DB opened through the gosnowflake connector backs two
// repositories: CatalogRepository answers INFORMATION_SCHEMA questions and
// QueryRepository runs arbitrary statements submitted by MCP clients.
//
// Result rows are returned as []*serialize.Record so column order survives
// serialization. Queries run with gosnowflake.WithHigherPrecision, which
// makes fixed-point NUMBER values arrive as *big.Float or *big.Int.
package store
