// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the link server.
//
// Implementations block in [RunServer] until ctx is cancelled or serving
// fails, and release the listener in [Shutdown].
type Server interface {
	// RunServer serves requests and blocks until ctx is done. A graceful
	// stop is not reported as an error.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for active requests
	// until ctx expires.
	Shutdown(ctx context.Context) error

	// BaseURL returns the http:// origin the server listens on.
	BaseURL() string
}
