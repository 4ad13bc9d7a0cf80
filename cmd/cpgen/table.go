// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-cp-generator/models"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, fancy bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderPreview prints the bundle entries and, when present, the
// validation report summary and conflicts.
func renderPreview(p models.BundlePreview, fancy bool) string {
	rows := make([][]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		rows = append(rows, []string{e.Name, humanize.IBytes(e.Size)})
	}

	var b strings.Builder
	b.WriteString(renderTable([]string{"File", "Size"}, rows, []columnAlignment{alignLeft, alignRight}, fancy))

	r := p.Report
	if r == nil {
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(renderTable(
		[]string{"Clauses", "Placeholders filled", "Conflicts", "Gaps"},
		[][]string{{
			fmt.Sprint(r.TotalClauses),
			fmt.Sprint(len(r.PlaceholdersFilled)),
			fmt.Sprint(len(r.Conflicts)),
			fmt.Sprint(len(r.Gaps)),
		}},
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
		fancy,
	))

	if len(r.Conflicts) > 0 {
		conflicts := append([]models.ClauseConflict(nil), r.Conflicts...)
		sort.SliceStable(conflicts, func(i, j int) bool { return conflicts[i].ClauseID < conflicts[j].ClauseID })

		crows := make([][]string, 0, len(conflicts))
		for _, c := range conflicts {
			crows = append(crows, []string{c.ClauseID, oneLine(c.Base, 40), oneLine(c.Negotiated, 40)})
		}
		b.WriteString("\n\n")
		b.WriteString(renderTable([]string{"Clause", "Base", "Negotiated"}, crows, nil, fancy))
	}

	if len(r.Gaps) > 0 {
		b.WriteString("\n\nGaps: ")
		b.WriteString(strings.Join(r.Gaps, ", "))
	}

	return b.String()
}

func oneLine(v string, max int) string {
	v = strings.Join(strings.Fields(v), " ")
	if len(v) <= max {
		return v
	}
	return v[:max-3] + "..."
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
