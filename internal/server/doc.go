// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the local link server that makes object URLs of
// generated bundles resolvable over HTTP.
//
// The listener is bound when the server is created, so the real address is
// known (and can be handed to the artifact store) before serving starts.
// RunServer blocks until its context is cancelled and then shuts the server
// down gracefully.
package server
