// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	ToolListDatabases = "list_databases"
	ToolListSchemas   = "list_schemas"
	ToolListTables    = "list_tables"
	ToolDescribeTable = "describe_table"
	ToolReadQuery     = "read_query"
	ToolAppendInsight = "append_insight"
	ToolWriteQuery    = "write_query"
	ToolCreateTable   = "create_table"
)

const (
	argDatabase  = "database"
	argSchema    = "schema"
	argTableName = "table_name"
	argQuery     = "query"
	argInsight   = "insight"
)

type toolDefinition struct {
	tool          mcp.Tool
	handler       mcpserver.ToolHandlerFunc
	requiresWrite bool
}

func (h *Handler) tools() []toolDefinition {
	return []toolDefinition{
		{
			tool: mcp.NewTool(ToolListDatabases,
				mcp.WithDescription("List all available databases in Snowflake"),
			),
			handler: h.listDatabases,
		},
		{
			tool: mcp.NewTool(ToolListSchemas,
				mcp.WithDescription("List all schemas in a database"),
				mcp.WithString(argDatabase, mcp.Required(), mcp.Description("Database name to list schemas from")),
			),
			handler: h.listSchemas,
		},
		{
			tool: mcp.NewTool(ToolListTables,
				mcp.WithDescription("List all tables in a specific database and schema"),
				mcp.WithString(argDatabase, mcp.Required(), mcp.Description("Database name")),
				mcp.WithString(argSchema, mcp.Required(), mcp.Description("Schema name")),
			),
			handler: h.listTables,
		},
		{
			tool: mcp.NewTool(ToolDescribeTable,
				mcp.WithDescription("Get the schema information for a specific table"),
				mcp.WithString(argTableName, mcp.Required(),
					mcp.Description("Fully qualified table name in the format 'database.schema.table'")),
			),
			handler: h.describeTable,
		},
		{
			tool: mcp.NewTool(ToolReadQuery,
				mcp.WithDescription("Execute a SELECT query."),
				mcp.WithString(argQuery, mcp.Required(), mcp.Description("SELECT SQL query to execute")),
			),
			handler: h.readQuery,
		},
		{
			tool: mcp.NewTool(ToolAppendInsight,
				mcp.WithDescription("Add a data insight to the memo"),
				mcp.WithString(argInsight, mcp.Required(), mcp.Description("Data insight discovered from analysis")),
			),
			handler: h.appendInsight,
		},
		{
			tool: mcp.NewTool(ToolWriteQuery,
				mcp.WithDescription("Execute an INSERT, UPDATE, or DELETE query on the Snowflake database"),
				mcp.WithString(argQuery, mcp.Required(), mcp.Description("SQL query to execute")),
			),
			handler:       h.writeQuery,
			requiresWrite: true,
		},
		{
			tool: mcp.NewTool(ToolCreateTable,
				mcp.WithDescription("Create a new table in the Snowflake database"),
				mcp.WithString(argQuery, mcp.Required(), mcp.Description("CREATE TABLE SQL statement")),
			),
			handler:       h.createTable,
			requiresWrite: true,
		},
	}
}

// enabledTools drops write tools unless writes are allowed, the tools listed
// in exclude_tools, and the tools replaced by prefetched resources.
func (h *Handler) enabledTools() []toolDefinition {
	excluded := slices.Clone(h.cfg.ExcludeTools)
	if h.cfg.PrefetchEnabled() {
		excluded = append(excluded, ToolListTables, ToolDescribeTable)
	}

	var enabled []toolDefinition
	for _, t := range h.tools() {
		if t.requiresWrite && !h.cfg.AllowWrite {
			continue
		}
		if slices.Contains(excluded, t.tool.Name) {
			continue
		}
		enabled = append(enabled, t)
	}

	return enabled
}

func (h *Handler) enabledToolNames() []string {
	tools := h.enabledTools()
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.tool.Name)
	}
	return names
}
