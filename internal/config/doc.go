// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the Snowflake connection parameters and the server
// settings of the application.
//
// Connection parameters are assembled from up to three sources in the
// following priority order (later sources override earlier keys):
//  1. Environment variables (SNOWFLAKE_<PARAMETER>)
//  2. Inline command-line pairs (--<parameter> <value>)
//  3. A named section of a connections file (TOML, YAML or JSON)
//
// The file source is used only when both the file path and the section name
// are supplied; supplying just one of them is an error.
//
// The main entry points are [Resolve] for the connection parameters and
// [NewServerConfig] together with [SplitArguments] for the server settings.
package config
