// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"time"

	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func (h *Handler) withLogging(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.FromContext(ctx)

		start := time.Now()
		result, err := next(ctx, request)
		duration := time.Since(start)

		isError := err != nil || (result != nil && result.IsError)
		log.Info().
			Str("tool", request.Params.Name).
			Bool("is_error", isError).
			Dur("duration", duration).
			Send()

		return result, err
	}
}
