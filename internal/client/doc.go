// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the link server and the terminal UI side by side in one process
// lifecycle. When either stops, the other is stopped too, and every object
// URL issued during the session is revoked before Run returns.
package client
