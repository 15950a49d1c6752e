// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsService_EmptyMemo(t *testing.T) {
	svc := NewInsightsService(logger.Nop())

	assert.Equal(t, "No data insights have been discovered yet.", svc.Memo(context.Background()))
	assert.Empty(t, svc.Insights(context.Background()))
}

func TestInsightsService_AppendInsight(t *testing.T) {
	svc := NewInsightsService(logger.Nop()).(*insightsService)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	insight, err := svc.AppendInsight(ctx, "  revenue doubled in Q3 \n")
	require.NoError(t, err)
	assert.Equal(t, "revenue doubled in Q3", insight.Text)
	assert.Equal(t, fixed, insight.AddedAt)

	assert.Equal(t, "Data Intelligence Memo\n\nKey Insights Discovered:\n\n- revenue doubled in Q3", svc.Memo(ctx))

	_, err = svc.AppendInsight(ctx, "churn is flat")
	require.NoError(t, err)

	memo := svc.Memo(ctx)
	assert.Contains(t, memo, "- revenue doubled in Q3\n- churn is flat")
	assert.Contains(t, memo, "Analysis has revealed 2 key data insights.")
}

func TestInsightsService_RejectsEmpty(t *testing.T) {
	svc := NewInsightsService(logger.Nop())

	_, err := svc.AppendInsight(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyInsight)
	assert.Empty(t, svc.Insights(context.Background()))
}

func TestInsightsService_InsightsReturnsCopy(t *testing.T) {
	svc := NewInsightsService(logger.Nop())
	ctx := context.Background()
	_, err := svc.AppendInsight(ctx, "first")
	require.NoError(t, err)

	got := svc.Insights(ctx)
	got[0].Text = "mutated"

	assert.Equal(t, "first", svc.Insights(ctx)[0].Text)
}

func TestInsightsService_ConcurrentAppends(t *testing.T) {
	svc := NewInsightsService(logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.AppendInsight(ctx, fmt.Sprintf("insight %d", i))
			_ = svc.Memo(ctx)
		}()
	}
	wg.Wait()

	assert.Len(t, svc.Insights(ctx), 50)
}
