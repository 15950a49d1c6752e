// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler exposes the services as MCP tools and resources.
//
// Tool results carry two content items: a YAML rendering for humans and
// the same data as JSON in an embedded data://<trace id> resource. Failures
// are reported as tool errors so the client sees them as results.
package handler
