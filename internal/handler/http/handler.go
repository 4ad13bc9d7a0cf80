// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-cp-generator/internal/artifact"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/utils"
)

type Handler struct {
	artifacts artifact.Store
	traceIDs  utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(artifacts artifact.Store, logger *logger.Logger) *Handler {
	logger.Debug().Msg("link handler created")
	return &Handler{
		artifacts: artifacts,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
