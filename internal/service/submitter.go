// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cp-generator/internal/adapter"
	"github.com/MKhiriev/go-cp-generator/internal/artifact"
	"github.com/MKhiriev/go-cp-generator/internal/bundle"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/utils"
	"github.com/MKhiriev/go-cp-generator/models"
)

type submitterService struct {
	adapter adapter.GeneratorAdapter
	store   artifact.Store
	ids     utils.IDGenerator

	logger *logger.Logger
}

// NewSubmitterService creates the upload submitter on top of the generator
// adapter and the object URL store.
func NewSubmitterService(generator adapter.GeneratorAdapter, store artifact.Store, ids utils.IDGenerator, logger *logger.Logger) SubmitterService {
	return &submitterService{
		adapter: generator,
		store:   store,
		ids:     ids,
		logger:  logger,
	}
}

// ReadForm builds a submission from the form controls. The filename is
// taken verbatim; the default is applied when the payload is built.
func ReadForm(form Form) models.FormSubmission {
	return models.FormSubmission{
		Recap:      form.File(models.FieldRecap),
		BaseCP:     form.File(models.FieldBaseCP),
		Negotiated: form.File(models.FieldNegotiated),
		Filename:   form.Value(models.FieldFilename),
	}
}

// Present applies the outcome of one submission. On error the message is
// alerted and the region is left untouched, so a hidden region stays hidden.
// On success the link is set, the region revealed and the static ready
// message written to the report area.
func Present(result models.ResultArtifact, err error, region ResultRegion, alert Alerter) {
	if err != nil {
		alert.Alert(err.Error())
		return
	}

	region.SetDownloadLink(result.ObjectURL)
	region.Show()
	region.SetReport(models.ReadyMessage)
}

func (s *submitterService) Submit(ctx context.Context, submission models.FormSubmission) (models.ResultArtifact, error) {
	log := s.logger.WithSubmission(s.ids.Generate())
	log.Info().
		Str("filename", submission.ResolvedFilename()).
		Msg("submitting form")

	generated, err := s.adapter.Generate(ctx, submission)
	if err != nil {
		log.Error().Err(err).Msg("generate failed")
		return models.ResultArtifact{}, err
	}

	preview, err := bundle.Preview(generated.Data)
	if err != nil {
		log.Debug().Err(err).Msg("bundle preview skipped")
	}

	result := s.store.CreateObjectURL(generated, preview)

	log.Info().
		Str("object_url", result.ObjectURL).
		Int("size", result.Size()).
		Msg("bundle ready")

	return result, nil
}

func (s *submitterService) HandleSubmit(ctx context.Context, form Form, region ResultRegion, alert Alerter) {
	result, err := s.Submit(ctx, ReadForm(form))
	Present(result, err, region, alert)
}

func (s *submitterService) Health(ctx context.Context) (string, error) {
	status, err := s.adapter.Health(ctx)
	if err != nil {
		return "", fmt.Errorf("health check: %w", err)
	}
	return status, nil
}
