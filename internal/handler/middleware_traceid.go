// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"

	"github.com/MKhiriev/mcp-snowflake-server/internal/utils"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// withTraceID gives every tool call a fresh trace id and a child logger
// carrying it, both stored in the context.
func (h *Handler) withTraceID(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		traceID := utils.NewTraceID()

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID).Str("tool", request.Params.Name)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

		return next(ctx, request)
	}
}

func traceIDFromContext(ctx context.Context) string {
	traceID, _ := utils.GetTraceIDFromContext(ctx)
	return traceID
}
