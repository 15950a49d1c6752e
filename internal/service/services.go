// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/internal/store"
	"github.com/MKhiriev/mcp-snowflake-server/models"
)

type Services struct {
	DataService     DataService
	InsightsService InsightsService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DataService:     NewDataValidationService().Wrap(NewDataService(storages, logger)),
		InsightsService: NewInsightsService(logger),
		AppInfoService:  appInfo,
	}, nil
}
