// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires the MCP handlers into an mcp-go server and runs it
// over stdio until the client disconnects or a stop signal arrives.
package server
