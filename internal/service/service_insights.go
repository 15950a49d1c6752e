// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/models"
)

const noInsightsMemo = "No data insights have been discovered yet."

// insightsService is an in-memory memo. It lives as long as the process.
type insightsService struct {
	mu       sync.RWMutex
	insights []models.Insight
	now      func() time.Time

	logger *logger.Logger
}

func NewInsightsService(logger *logger.Logger) InsightsService {
	return &insightsService{
		now:    time.Now,
		logger: logger,
	}
}

func (s *insightsService) AppendInsight(ctx context.Context, text string) (models.Insight, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Insight{}, ErrEmptyInsight
	}

	insight := models.Insight{Text: text, AddedAt: s.now()}

	s.mu.Lock()
	s.insights = append(s.insights, insight)
	total := len(s.insights)
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().Int("total", total).Msg("insight added")

	return insight, nil
}

func (s *insightsService) Insights(ctx context.Context) []models.Insight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Insight, len(s.insights))
	copy(out, s.insights)
	return out
}

// Memo renders the insights as a bulleted text document.
func (s *insightsService) Memo(ctx context.Context) string {
	insights := s.Insights(ctx)
	if len(insights) == 0 {
		return noInsightsMemo
	}

	var b strings.Builder
	b.WriteString("Data Intelligence Memo\n\n")
	b.WriteString("Key Insights Discovered:\n\n")
	for i, insight := range insights {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(insight.Text)
	}
	if len(insights) > 1 {
		fmt.Fprintf(&b, "\n\nSummary:\nAnalysis has revealed %d key data insights.", len(insights))
	}

	return b.String()
}
