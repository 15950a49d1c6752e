// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/mcp-snowflake-server/internal/handler"
	"github.com/MKhiriev/mcp-snowflake-server/internal/logger"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Name is reported to clients during initialization.
const Name = "mcp_snowflake_server"

type server struct {
	mcp *mcpserver.MCPServer

	in  io.Reader
	out io.Writer

	mu     sync.Mutex
	cancel context.CancelFunc

	logger *logger.Logger
}

// Option customizes a server created by NewServer.
type Option func(*server)

// WithTransport replaces stdin and stdout. Used by tests.
func WithTransport(in io.Reader, out io.Writer) Option {
	return func(s *server) {
		s.in = in
		s.out = out
	}
}

// NewServer creates the MCP server, registers the handler's tools and
// resources on it and reports version to clients.
func NewServer(h *handler.Handler, version string, logger *logger.Logger, opts ...Option) (Server, error) {
	if h == nil {
		return nil, errNoHandler
	}
	logger.Info().Str("version", version).Msg("creating new server...")

	mcp := mcpserver.NewMCPServer(Name, version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, true),
		mcpserver.WithRecovery(),
	)
	h.Register(mcp)

	s := &server{
		mcp:    mcp,
		in:     os.Stdin,
		out:    os.Stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *server) RunServer() error {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return errAlreadyRunning
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	s.cancel = stop
	s.mu.Unlock()
	defer stop()

	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(s.logger, "", 0))

	s.logger.Info().Msg("Launching MCP stdio server")
	err := stdio.Listen(ctx, s.in, s.out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		s.logger.Error().Err(err).Msg("error serving stdio")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.logger.Info().Msg("MCP server Shutdown")
		s.cancel()
	}
}
