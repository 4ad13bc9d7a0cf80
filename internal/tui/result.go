// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-cp-generator/models"
	"github.com/dustin/go-humanize"
)

// resultModel is the result region below the form. It stays hidden until the
// first successful submission and keeps the last link afterwards.
type resultModel struct {
	visible bool
	link    string
	report  string
	preview *models.BundlePreview
}

// SetDownloadLink implements service.ResultRegion.
func (m *resultModel) SetDownloadLink(objectURL string) {
	m.link = objectURL
}

// Show implements service.ResultRegion.
func (m *resultModel) Show() {
	m.visible = true
}

// SetReport implements service.ResultRegion.
func (m *resultModel) SetReport(text string) {
	m.report = text
}

func (m resultModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString("Download CP Bundle: ")
	b.WriteString(linkStyle.Render(m.link))
	b.WriteString("\n\n")
	b.WriteString(m.report)

	if m.preview != nil {
		b.WriteString("\n\n")
		b.WriteString(renderPreview(*m.preview))
	}
	return b.String()
}

func renderPreview(p models.BundlePreview) string {
	var b strings.Builder

	b.WriteString("Bundle contents:\n")
	for _, e := range p.Entries {
		fmt.Fprintf(&b, "  %-40s %10s\n", fitText(e.Name, 40), humanize.IBytes(e.Size))
	}

	r := p.Report
	if r == nil {
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "\nClauses: %d  Placeholders filled: %d  Conflicts: %d  Gaps: %d",
		r.TotalClauses, len(r.PlaceholdersFilled), len(r.Conflicts), len(r.Gaps))

	if len(r.Conflicts) > 0 {
		ids := make([]string, 0, len(r.Conflicts))
		for _, c := range r.Conflicts {
			ids = append(ids, c.ClauseID)
		}
		sort.Strings(ids)
		b.WriteString("\nConflicting clauses: ")
		b.WriteString(strings.Join(ids, ", "))
	}
	if len(r.Gaps) > 0 {
		b.WriteString("\nGaps: ")
		b.WriteString(strings.Join(r.Gaps, ", "))
	}
	return b.String()
}
