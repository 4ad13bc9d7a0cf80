// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Messages written into error response bodies.
const (
	// MsgArtifactNotFound is returned when the id was never issued or has
	// been revoked.
	MsgArtifactNotFound = "artifact not found"

	// MsgRouteNotFound is returned for any path outside /blob/.
	MsgRouteNotFound = "not found"
)
