// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local link server that resolves object URLs
// of generated bundles.
//
// GET and HEAD on /blob/{id} serve the bundle as an attachment; DELETE
// revokes it. Request tracing and access logging are handled by middleware
// before requests reach the artifact store.
package http
