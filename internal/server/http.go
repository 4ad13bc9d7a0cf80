// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-cp-generator/internal/config"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
)

// ShutdownTimeout bounds how long RunServer waits for in-flight downloads
// after its context is cancelled.
const ShutdownTimeout = 5 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener
	running  atomic.Bool

	logger *logger.Logger
}

// NewLinkServer binds cfg.Address and returns a Server for handler. Port 0
// picks a free port; BaseURL reports the one actually bound.
func NewLinkServer(handler http.Handler, cfg config.ClientLinkServer, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}
	if strings.TrimSpace(cfg.Address) == "" {
		return nil, errEmptyAddress
	}

	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("link server listen on %s: %w", cfg.Address, err)
	}

	logger.Info().Str("address", ln.Addr().String()).Msg("link server bound")

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		listener: ln,
		logger:   logger,
	}, nil
}

func (h *httpServer) BaseURL() string {
	return "http://" + h.listener.Addr().String()
}

func (h *httpServer) RunServer(ctx context.Context) error {
	if !h.running.CompareAndSwap(false, true) {
		return errAlreadyServed
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(h.listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		h.logger.Error().Err(err).Msg("link server Serve")
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()

	if err := h.Shutdown(shutdownCtx); err != nil {
		return err
	}
	h.logger.Info().Msg("link server shut down gracefully")

	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	defer h.listener.Close()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("link server Shutdown")
		return err
	}
	return nil
}
