// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// errorOverlayModel is the blocking alert box. It is visible while message
// is non-empty and swallows all keys except the dismiss keys.
type errorOverlayModel struct {
	message string
}

// Alert implements service.Alerter.
func (m *errorOverlayModel) Alert(message string) {
	m.message = message
}

func (m *errorOverlayModel) dismiss() {
	m.message = ""
}

func (m errorOverlayModel) visible() bool {
	return m.message != ""
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}
