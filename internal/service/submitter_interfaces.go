// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cp-generator/models"
)

// Form gives read access to the named controls of the submission form.
type Form interface {
	// File returns the file selected in the named file control.
	File(name string) models.FormFile
	// Value returns the text of the named text control.
	Value(name string) string
}

// ResultRegion is the hidden result area of the form: a container, the
// download link inside it, and the report text.
type ResultRegion interface {
	// SetDownloadLink points the download link at objectURL.
	SetDownloadLink(objectURL string)
	// Show reveals the region.
	Show()
	// SetReport replaces the report text.
	SetReport(text string)
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// SubmitterService implements the upload submitter.
type SubmitterService interface {
	// Submit posts the submission once and registers the returned bundle
	// under an object URL. It never retries. Errors are
	// [adapter.RequestFailedError], [adapter.NetworkError] or a wrapped
	// [adapter.ErrInvalidSubmission].
	Submit(ctx context.Context, submission models.FormSubmission) (models.ResultArtifact, error)

	// HandleSubmit reads the form, submits it and applies the outcome to
	// region or alert. It blocks until the response has been fully read;
	// the UI is touched only after that.
	HandleSubmit(ctx context.Context, form Form, region ResultRegion, alert Alerter)

	// Health reports the generator's health status.
	Health(ctx context.Context) (string, error)
}
