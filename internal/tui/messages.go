// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-cp-generator/models"

// submitDoneMsg carries the outcome of one submission. Messages are applied
// in arrival order, so the last response to arrive owns the result region.
type submitDoneMsg struct {
	result models.ResultArtifact
	err    error
}

type savedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type healthMsg struct {
	status string
	err    error
}

type clearStatusMsg struct{}
