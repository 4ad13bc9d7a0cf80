// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal form of the generator
// client on top of bubbletea.
//
// The form collects the three source files and the output filename. Every
// enter starts an independent submission; results are applied in the order
// they arrive. Errors are shown in a blocking overlay, and the result region
// with the bundle link stays visible once a submission has succeeded.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cp-generator/internal/config"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/service"
	"github.com/MKhiriev/go-cp-generator/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("tui: client services are required")

type TUI struct {
	services  *service.ClientServices
	cfg       config.ClientApp
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, cfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, cfg: cfg, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the form until the user quits or ctx is cancelled. The logger
// travels in ctx to the commands the model starts.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)
	model := newAppModel(ctx, t.services, t.cfg.DownloadDir, t.buildInfo)

	t.logger.Info().Msg("starting terminal UI")
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
