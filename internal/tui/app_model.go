// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cp-generator/internal/artifact"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/service"
	"github.com/MKhiriev/go-cp-generator/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a transient status line stays on screen.
const statusTTL = 3 * time.Second

type appModel struct {
	ctx         context.Context
	services    *service.ClientServices
	downloadDir string
	buildInfo   models.AppBuildInfo

	form         formModel
	result       resultModel
	errorOverlay errorOverlayModel
	spinner      spinner.Model

	// inFlight counts submissions whose response has not arrived yet.
	// Submitting again while one is pending is allowed.
	inFlight int

	health        string
	status        string
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, downloadDir string, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:         ctx,
		services:    services,
		downloadDir: downloadDir,
		buildInfo:   buildInfo,
		form:        newFormModel(),
		spinner:     s,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdHealth()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.errorOverlay.visible() {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.errorOverlay.dismiss()
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		return m.updateKeys(msg)
	case submitDoneMsg:
		m.inFlight--
		if msg.err == nil {
			m.result.preview = msg.result.Preview
		}
		service.Present(msg.result, msg.err, &m.result, &m.errorOverlay)
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.errorOverlay.Alert(msg.err.Error())
			return m, nil
		}
		m.status = "Saved to " + msg.path
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.errorOverlay.Alert(msg.err.Error())
			return m, nil
		}
		m.status = "Link copied"
		return m, cmdClearStatus()
	case healthMsg:
		if msg.err != nil {
			m.health = "generator unavailable: " + msg.err.Error()
		} else {
			m.health = "generator: " + msg.status
		}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.inFlight > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.form = m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form = m.form.setFocus(m.form.focus - 1)
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submit()
	}

	if !m.form.onActions() {
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(msg, keys.download):
		if !m.result.visible {
			return m, nil
		}
		return m, m.cmdSave(m.result.link)
	case key.Matches(msg, keys.copy):
		if !m.result.visible {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.result.link)
	case key.Matches(msg, keys.health):
		return m, m.cmdHealth()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form.onActions() {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// submit reads the form as it is now and starts a request for it.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	submission := service.ReadForm(m.form)

	m.inFlight++

	cmds := []tea.Cmd{m.cmdSubmit(submission)}
	if m.inFlight == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.form.View())

	if m.inFlight > 0 {
		fmt.Fprintf(&b, "\n\n%s Generating... (%d pending)", m.spinner.View(), m.inFlight)
	}
	if m.result.visible {
		b.WriteString("\n\n")
		b.WriteString(m.result.View())
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}
	if m.health != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(m.health))
	}

	hotKeys := "tab: next field  enter: generate"
	if m.form.onActions() {
		hotKeys = "enter: generate  d: download  c: copy link  h: health  v: about  q: quit"
	}

	body := renderPage("CHARTER PARTY GENERATOR", b.String(), hotKeys)
	if m.errorOverlay.visible() {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) cmdSubmit(submission models.FormSubmission) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Submitter
	return func() tea.Msg {
		result, err := svc.Submit(ctx, submission)
		return submitDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdSave(objectURL string) tea.Cmd {
	log := logger.FromContext(m.ctx)
	store := m.services.Artifacts
	dir := m.downloadDir
	return func() tea.Msg {
		a, ok := store.Resolve(objectURL)
		if !ok {
			log.Warn().Str("object_url", objectURL).Msg("download of revoked bundle")
			return savedMsg{err: fmt.Errorf("bundle is no longer available")}
		}
		path, err := artifact.Save(dir, a)
		if err != nil {
			log.Error().Err(err).Str("object_url", objectURL).Msg("save bundle failed")
			return savedMsg{err: err}
		}
		log.Info().Str("path", path).Int("size", a.Size()).Msg("bundle saved")
		return savedMsg{path: path}
	}
}

func (m appModel) cmdHealth() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Submitter
	return func() tea.Msg {
		status, err := svc.Health(ctx)
		return healthMsg{status: status, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
