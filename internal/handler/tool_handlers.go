// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"

	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *Handler) listDatabases(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.services.DataService.ListDatabases(ctx)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return dataResult(ctx, newEnvelope(ctx), data)
}

func (h *Handler) listSchemas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	database, err := request.RequireString(argDatabase)
	if err != nil {
		return toolError(ctx, err), nil
	}

	data, err := h.services.DataService.ListSchemas(ctx, database)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return dataResult(ctx, newEnvelope(ctx).Set(argDatabase, database), data)
}

func (h *Handler) listTables(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	database, err := request.RequireString(argDatabase)
	if err != nil {
		return toolError(ctx, err), nil
	}
	schema, err := request.RequireString(argSchema)
	if err != nil {
		return toolError(ctx, err), nil
	}

	data, err := h.services.DataService.ListTables(ctx, database, schema)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return dataResult(ctx, newEnvelope(ctx).Set(argDatabase, database).Set(argSchema, schema), data)
}

func (h *Handler) describeTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tableName, err := request.RequireString(argTableName)
	if err != nil {
		return toolError(ctx, err), nil
	}

	data, err := h.services.DataService.DescribeTable(ctx, tableName)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return dataResult(ctx, newEnvelope(ctx).Set(argTableName, tableName), data)
}

func (h *Handler) readQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString(argQuery)
	if err != nil {
		return toolError(ctx, err), nil
	}

	data, err := h.services.DataService.ReadQuery(ctx, query)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return dataResult(ctx, newEnvelope(ctx), data)
}

func (h *Handler) writeQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString(argQuery)
	if err != nil {
		return toolError(ctx, err), nil
	}

	result, err := h.services.DataService.WriteQuery(ctx, query)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return dataResult(ctx, newEnvelope(ctx), affectedRows(result.AffectedRows))
}

func (h *Handler) createTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString(argQuery)
	if err != nil {
		return toolError(ctx, err), nil
	}

	result, err := h.services.DataService.CreateTable(ctx, query)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return dataResult(ctx, newEnvelope(ctx), affectedRows(result.AffectedRows))
}

func (h *Handler) appendInsight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString(argInsight)
	if err != nil {
		return toolError(ctx, err), nil
	}

	if _, err := h.services.InsightsService.AppendInsight(ctx, text); err != nil {
		return toolError(ctx, err), nil
	}

	if h.notifier != nil {
		h.notifier.SendNotificationToAllClients("notifications/resources/updated", map[string]any{"uri": memoURI})
	}

	return mcp.NewToolResultText("Insight added to memo"), nil
}

func affectedRows(n int64) *serialize.Record {
	return serialize.NewRecord(1).Set("affected_rows", n)
}

// toolError reports err to the client as a failed tool result.
func toolError(ctx context.Context, err error) *mcp.CallToolResult {
	logger.FromContext(ctx).Err(err).Msg("tool call failed")
	return mcp.NewToolResultError(err.Error())
}
