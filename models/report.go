// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReportFileName is the archive entry that holds the validation report.
const ReportFileName = "validation_report.json"

// ClauseConflict describes a clause whose negotiated text differs from the
// base template.
type ClauseConflict struct {
	ClauseID   string `json:"clause_id"`
	Base       string `json:"base"`
	Negotiated string `json:"negotiated"`
}

// ValidationReport is the JSON report the generator packs next to the
// document.
type ValidationReport struct {
	PlaceholdersFilled map[string]string `json:"placeholders_filled"`
	Conflicts          []ClauseConflict  `json:"conflicts"`
	Gaps               []string          `json:"gaps"`
	TotalClauses       int               `json:"total_clauses"`
}

// BundleEntry is one file inside the bundle archive.
type BundleEntry struct {
	Name string
	Size uint64
}

// BundlePreview summarises the bundle contents.
type BundlePreview struct {
	Entries []BundleEntry
	// Report is nil when the archive has no validation report or it could
	// not be decoded.
	Report *ValidationReport
}
