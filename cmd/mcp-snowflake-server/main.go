// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/MKhiriev/mcp-snowflake-server/internal/config"
	"github.com/MKhiriev/mcp-snowflake-server/internal/handler"
	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	"github.com/MKhiriev/mcp-snowflake-server/internal/server"
	"github.com/MKhiriev/mcp-snowflake-server/internal/service"
	"github.com/MKhiriev/mcp-snowflake-server/internal/store"
	"github.com/MKhiriev/mcp-snowflake-server/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.NewServerConfig()

	cmd := &cobra.Command{
		Use:   "mcp-snowflake-server [flags] [--<connection parameter> <value>...]",
		Short: "MCP server exposing a Snowflake database over stdio",
		Long: "Any argument that is not a server flag is passed to the Snowflake connection,\n" +
			"e.g. --account xy12345 --warehouse COMPUTE_WH.",
		// Unknown flags are connection parameters, so cobra must not reject them.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if slices.Contains(args, "-h") || slices.Contains(args, "--help") {
				return cmd.Help()
			}

			known, unknown := config.SplitArguments(cmd.Flags(), args)
			if err := cmd.Flags().Parse(known); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, config.ParseInlineArguments(unknown))
		},
	}
	cfg.RegisterFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, cfg *config.ServerConfig, inline config.ConnectionConfig) error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprint(os.Stderr, buildInfo.String())

	log, closer, err := logger.NewLogger("mcp-snowflake-server", logger.Options{
		Level: cfg.LogLevel,
		Dir:   cfg.LogDir,
	})
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	defer closer.Close()
	ctx = log.WithContext(ctx)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	conn, err := config.Resolve(config.EnvironmentSource(), inline, cfg.FileRequest())
	if err != nil {
		log.Error().Err(err).Msg("error resolving connection config")
		return err
	}
	log.Debug().Any("connection", conn.Redacted()).Any("server", cfg).Msg("received configs")

	storages, err := store.NewStorages(ctx, conn, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		return err
	}
	defer storages.Close()

	services, err := service.NewServices(storages, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return err
	}

	h := handler.NewHandler(services, cfg, conn, log)
	if err := h.Prefetch(ctx); err != nil {
		log.Error().Err(err).Msg("error prefetching table descriptions")
		return err
	}

	srv, err := server.NewServer(h, services.AppInfoService.GetAppVersion(ctx), log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer()
}
