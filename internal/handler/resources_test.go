// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"testing"

	"github.com/MKhiriev/mcp-snowflake-server/internal/config"
	"github.com/MKhiriev/mcp-snowflake-server/internal/serialize"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func readRequest(uri string) mcp.ReadResourceRequest {
	var req mcp.ReadResourceRequest
	req.Params.URI = uri
	return req
}

func TestReadMemo(t *testing.T) {
	h, deps := newTestHandler(t, config.NewServerConfig(), nil)
	deps.insights.EXPECT().Memo(gomock.Any()).Return("No data insights have been discovered yet.")

	contents, err := h.readMemo(context.Background(), readRequest(memoURI))
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, memoURI, text.URI)
	assert.Equal(t, "text/plain", text.MIMEType)
	assert.Equal(t, "No data insights have been discovered yet.", text.Text)
}

func TestReadTable(t *testing.T) {
	h, _ := newTestHandler(t, config.NewServerConfig(), nil)
	h.tables = []*serialize.Record{
		serialize.NewRecord(3).
			Set("TABLE_NAME", "ORDERS").
			Set("COMMENT", nil).
			Set("COLUMNS", []*serialize.Record{serialize.NewRecord(1).Set("COLUMN_NAME", "ID")}),
	}

	t.Run("known table", func(t *testing.T) {
		contents, err := h.readTable(context.Background(), readRequest("context://table/ORDERS"))
		require.NoError(t, err)
		require.Len(t, contents, 1)

		text, ok := contents[0].(mcp.TextResourceContents)
		require.True(t, ok)
		assert.Equal(t, "TABLE_NAME: ORDERS\nCOMMENT: null\nCOLUMNS:\n  - COLUMN_NAME: ID\n", text.Text)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := h.readTable(context.Background(), readRequest("context://table/MISSING"))
		assert.ErrorIs(t, err, errUnknownTable)
	})
}
