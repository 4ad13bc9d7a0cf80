// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-cp-generator/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// formField describes one input of the submission form.
type formField struct {
	name  string
	label string
	hint  string
}

var formFields = []formField{
	{name: models.FieldRecap, label: "Recap (.txt)     ", hint: "path/to/recap.txt"},
	{name: models.FieldBaseCP, label: "Base CP (.docx)  ", hint: "path/to/base_cp.docx"},
	{name: models.FieldNegotiated, label: "Negotiated (.txt)", hint: "path/to/negotiated.txt"},
	{name: models.FieldFilename, label: "Output filename  ", hint: models.DefaultFilename},
}

// formModel holds the submission form. Focus index len(inputs) is the
// actions row.
type formModel struct {
	inputs []textinput.Model
	focus  int
}

func newFormModel() formModel {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].Placeholder = f.hint
		inputs[i].Prompt = ""
	}
	inputs[0].Focus()

	return formModel{inputs: inputs}
}

func (m formModel) index(name string) int {
	for i, f := range formFields {
		if f.name == name {
			return i
		}
	}
	return -1
}

// File implements service.Form. The path is read as typed; an empty path
// leaves the control without a selection.
func (m formModel) File(name string) models.FormFile {
	path := strings.TrimSpace(m.Value(name))
	if path == "" {
		return models.FormFile{Field: name}
	}
	return models.FormFile{Field: name, Name: filepath.Base(path), Path: path}
}

// Value implements service.Form.
func (m formModel) Value(name string) string {
	i := m.index(name)
	if i < 0 {
		return ""
	}
	return m.inputs[i].Value()
}

func (m formModel) onActions() bool {
	return m.focus == len(m.inputs)
}

func (m formModel) setFocus(i int) formModel {
	n := len(m.inputs) + 1
	i = (i%n + n) % n

	if !m.onActions() {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if !m.onActions() {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m formModel) View() string {
	var b strings.Builder
	for i, f := range formFields {
		b.WriteString(f.label)
		b.WriteString(" [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	b.WriteString("\n")

	button := "[ Generate ]"
	if m.onActions() {
		button = focusedStyle.Render(button)
	}
	b.WriteString(button)
	return b.String()
}
