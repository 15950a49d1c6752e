// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the MCP server.
//
// [RunServer] blocks until the transport is closed or shutdown is requested.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer() error

	// Shutdown stops a running server.
	Shutdown()
}
