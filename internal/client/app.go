// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/server"
	"github.com/MKhiriev/go-cp-generator/internal/service"
	"github.com/MKhiriev/go-cp-generator/internal/workers"
)

var ErrMissingComponent = errors.New("client: services, ui and link server are required")

type App struct {
	services   *service.ClientServices
	ui         UI
	linkServer server.Server

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, linkServer server.Server, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || linkServer == nil {
		return nil, ErrMissingComponent
	}

	return &App{
		services:   services,
		ui:         ui,
		linkServer: linkServer,
		logger:     logger,
	}, nil
}

// Run serves object URLs while the UI is open. SIGINT and SIGTERM stop both.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Str("base_url", a.linkServer.BaseURL()).Msg("launching link server")
	err := workers.New(
		workers.Func(a.linkServer.RunServer),
		a.ui,
	).Run(ctx)

	revoked := a.services.Artifacts.RevokeAll()
	a.logger.Info().Int("revoked", revoked).Msg("client stopped")

	return err
}
