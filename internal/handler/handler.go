// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mcp-snowflake-server/internal/config"
	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/MKhiriev/mcp-snowflake-server/internal/service"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// resourceNotifier is the part of *server.MCPServer used to announce memo
// updates.
type resourceNotifier interface {
	SendNotificationToAllClients(method string, params map[string]any)
}

type Handler struct {
	services *service.Services
	cfg      *config.ServerConfig

	database string
	schema   string
	tables   []*serialize.Record

	notifier resourceNotifier
	logger   *logger.Logger
}

// NewHandler builds the tool handlers. database and schema come from the
// resolved connection and are used by the prefetch.
func NewHandler(services *service.Services, cfg *config.ServerConfig, conn config.ConnectionConfig, logger *logger.Logger) *Handler {
	database, _ := conn.String(config.ParamDatabase)
	schema, _ := conn.String(config.ParamSchema)

	logger.Info().Msg("mcp handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		database: database,
		schema:   schema,
		logger:   logger,
	}
}

// Prefetch loads the table descriptions of the connection schema. It is a
// no-op unless prefetching is enabled.
func (h *Handler) Prefetch(ctx context.Context) error {
	if !h.cfg.PrefetchEnabled() {
		return nil
	}
	if h.database == "" || h.schema == "" {
		return ErrPrefetchTargetMissing
	}

	if zerolog.Ctx(ctx).GetLevel() == zerolog.Disabled {
		ctx = h.logger.WithContext(ctx)
	}

	tables, err := h.services.DataService.PrefetchTables(ctx, h.database, h.schema)
	if err != nil {
		return fmt.Errorf("error prefetching tables: %w", err)
	}
	h.tables = tables

	return nil
}

// Register adds the enabled tools and the resources to s.
func (h *Handler) Register(s *mcpserver.MCPServer) {
	h.notifier = s

	for _, t := range h.enabledTools() {
		s.AddTool(t.tool, h.withTraceID(h.withLogging(t.handler)))
	}
	h.logger.Info().Strs("tools", h.enabledToolNames()).Msg("tools registered")

	h.registerResources(s)
}
