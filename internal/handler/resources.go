// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	memoURI        = "memo://insights"
	tableURIPrefix = "context://table/"
	textMIMEType   = "text/plain"
	yamlMIMEType   = "application/yaml"
)

func (h *Handler) registerResources(s *mcpserver.MCPServer) {
	s.AddResource(
		mcp.NewResource(memoURI, "Data Insights Memo",
			mcp.WithResourceDescription("A living document of discovered data insights"),
			mcp.WithMIMEType(textMIMEType),
		),
		h.readMemo,
	)

	for _, table := range h.tables {
		name := tableName(table)
		s.AddResource(
			mcp.NewResource(tableURIPrefix+name, name+" table",
				mcp.WithResourceDescription(fmt.Sprintf("Description of the %s table", name)),
				mcp.WithMIMEType(yamlMIMEType),
			),
			h.readTable,
		)
	}
}

func (h *Handler) readMemo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      memoURI,
			MIMEType: textMIMEType,
			Text:     h.services.InsightsService.Memo(ctx),
		},
	}, nil
}

func (h *Handler) readTable(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	name := strings.TrimPrefix(uri, tableURIPrefix)

	for _, table := range h.tables {
		if tableName(table) != name {
			continue
		}

		text, err := serialize.ToYAML(table)
		if err != nil {
			return nil, fmt.Errorf("error rendering table %s: %w", name, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: uri, MIMEType: yamlMIMEType, Text: text},
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", errUnknownTable, name)
}

func tableName(table *serialize.Record) string {
	name, _ := table.Get("TABLE_NAME")
	return fmt.Sprint(name)
}
