// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-cp-generator/internal/adapter"
	"github.com/MKhiriev/go-cp-generator/internal/artifact"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/utils"
)

// ClientServices aggregates the services used by the client front ends.
type ClientServices struct {
	Submitter SubmitterService
	Artifacts artifact.Store
}

func NewClientServices(generator adapter.GeneratorAdapter, store artifact.Store, logger *logger.Logger) (*ClientServices, error) {
	if generator == nil || store == nil {
		return nil, ErrMissingDependency
	}

	return &ClientServices{
		Submitter: NewSubmitterService(generator, store, utils.NewUUIDGenerator(), logger),
		Artifacts: store,
	}, nil
}
