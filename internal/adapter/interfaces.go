// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the CP generator server.
//
// The primary abstraction is [GeneratorAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP multipart
// implementation ([NewHTTPGeneratorAdapter]).
//
// Failures are reported as [*RequestFailedError] (the server answered with a
// non-2xx status) or [*NetworkError] (the call itself could not complete).
// Both match the sentinels [ErrRequestFailed] and [ErrNetwork] via
// [errors.Is], and their Error text is the message shown to the user.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cp-generator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_adapter_mock.go -package=mock

// GeneratorAdapter defines communication with the CP generator server.
type GeneratorAdapter interface {
	// Generate sends the submission as one multipart POST with the parts
	// recap, base_cp, negotiated and filename, and returns the response body
	// as an opaque bundle. The request is sent exactly once; there are no
	// retries. An empty submission filename is replaced by
	// [models.DefaultFilename].
	Generate(ctx context.Context, submission models.FormSubmission) (models.GeneratedBundle, error)

	// Health checks the generator's health endpoint and returns the reported
	// status (normally "ok").
	Health(ctx context.Context) (string, error)
}
