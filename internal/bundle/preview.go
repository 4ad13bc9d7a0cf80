// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bundle looks inside generated bundles without trusting them: a
// bundle is opaque to the submit flow, and previewing it is best-effort.
package bundle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cp-generator/models"
	"github.com/klauspost/compress/zip"
)

// maxReportSize caps how much of the report entry is decoded.
const maxReportSize = 4 << 20

// ErrNotArchive is returned when the bundle is not a readable zip archive.
var ErrNotArchive = errors.New("bundle is not a zip archive")

// Preview lists the archive entries and decodes models.ReportFileName if
// present. A missing or malformed report leaves Report nil without failing;
// only an unreadable archive is an error.
func Preview(data []byte) (*models.BundlePreview, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}

	preview := &models.BundlePreview{
		Entries: make([]models.BundleEntry, 0, len(r.File)),
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		preview.Entries = append(preview.Entries, models.BundleEntry{
			Name: f.Name,
			Size: f.UncompressedSize64,
		})

		if f.Name == models.ReportFileName && preview.Report == nil {
			preview.Report = readReport(f)
		}
	}

	return preview, nil
}

func readReport(f *zip.File) *models.ValidationReport {
	rc, err := f.Open()
	if err != nil {
		return nil
	}
	defer rc.Close()

	raw, err := io.ReadAll(io.LimitReader(rc, maxReportSize))
	if err != nil {
		return nil
	}

	var report models.ValidationReport
	if err = json.Unmarshal(raw, &report); err != nil {
		return nil
	}
	return &report
}
