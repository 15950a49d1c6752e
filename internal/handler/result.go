// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	dataURIScheme = "data://"
	jsonMIMEType  = "application/json"
)

// newEnvelope starts a result document with the type and data_id keys.
func newEnvelope(ctx context.Context) *serialize.Record {
	return serialize.NewRecord(5).
		Set("type", "data").
		Set("data_id", traceIDFromContext(ctx))
}

// dataResult completes envelope with data and renders it as YAML text plus
// a JSON embedded resource.
func dataResult(ctx context.Context, envelope *serialize.Record, data any) (*mcp.CallToolResult, error) {
	envelope.Set("data", data)

	yamlText, err := serialize.ToYAML(envelope)
	if err != nil {
		return toolError(ctx, fmt.Errorf("error rendering result: %w", err)), nil
	}
	jsonText, err := serialize.ToJSON(envelope)
	if err != nil {
		return toolError(ctx, fmt.Errorf("error rendering result: %w", err)), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(yamlText),
			mcp.NewEmbeddedResource(mcp.TextResourceContents{
				URI:      dataURIScheme + traceIDFromContext(ctx),
				MIMEType: jsonMIMEType,
				Text:     jsonText,
			}),
		},
	}, nil
}
