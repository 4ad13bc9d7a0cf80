// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/MKhiriev/go-cp-generator/internal/config"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/utils"
	"github.com/MKhiriev/go-cp-generator/models"
)

type httpGeneratorAdapter struct {
	client *utils.HTTPClient

	generateURL string
	healthURL   string

	logger *logger.Logger
}

type healthResponse struct {
	Status string `json:"status"`
}

// NewHTTPGeneratorAdapter constructs the HTTP multipart implementation of
// [GeneratorAdapter]. The health URL is derived from the generate URL by
// replacing its last path segment with "health"
// (".../api/generate" becomes ".../api/health").
//
// Returns an error if adapterCfg.GenerateURL cannot be parsed as an absolute
// URL.
func NewHTTPGeneratorAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (GeneratorAdapter, error) {
	generateURL, healthURL, err := resolveURLs(adapterCfg.GenerateURL)
	if err != nil {
		return nil, fmt.Errorf("invalid generate url: %w", err)
	}

	client := utils.NewHTTPClient()
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpGeneratorAdapter{
		client:      client,
		generateURL: generateURL,
		healthURL:   healthURL,
		logger:      logger,
	}, nil
}

func resolveURLs(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and scheme")
	}

	health := *u
	health.RawQuery = ""
	health.Path = path.Join(path.Dir(strings.TrimRight(u.Path, "/")), "health")

	return u.String(), health.String(), nil
}

// Generate implements [GeneratorAdapter]. File parts are streamed from their
// readers or opened from their paths; opened files are closed before
// Generate returns.
func (h *httpGeneratorAdapter) Generate(ctx context.Context, submission models.FormSubmission) (models.GeneratedBundle, error) {
	req := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			models.FieldFilename: submission.ResolvedFilename(),
		})

	for _, file := range submission.Files() {
		reader, closeFn, err := openFormFile(file)
		if err != nil {
			return models.GeneratedBundle{}, err
		}
		defer closeFn()

		req.SetMultipartField(file.Field, file.FileName(), "application/octet-stream", reader)
	}

	h.logger.Debug().
		Str("url", h.generateURL).
		Str("filename", submission.ResolvedFilename()).
		Msg("sending generate request")

	resp, err := req.Post(h.generateURL)
	if err != nil {
		return models.GeneratedBundle{}, &NetworkError{Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GeneratedBundle{}, err
	}

	name := utils.AttachmentFileName(resp.Header().Get("Content-Disposition"))
	if name == "" {
		name = models.DefaultBundleName
	}

	return models.GeneratedBundle{
		Data:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
		Name:        name,
	}, nil
}

// Health implements [GeneratorAdapter]. It GETs the health endpoint and
// decodes {"status": "..."}.
func (h *httpGeneratorAdapter) Health(ctx context.Context) (string, error) {
	var health healthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		ForceContentType("application/json").
		Get(h.healthURL)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return health.Status, nil
}

func openFormFile(file models.FormFile) (io.Reader, func(), error) {
	if file.Reader != nil {
		return file.Reader, func() {}, nil
	}
	if file.Path == "" {
		return nil, nil, fmt.Errorf("%w: no file selected for %s", ErrInvalidSubmission, file.Field)
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %s: %v", ErrInvalidSubmission, file.Field, err)
	}

	return f, func() { _ = f.Close() }, nil
}
