// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived parts of the client as one group.
//
// Every worker gets a context that is cancelled as soon as any worker in the
// group returns, so the link server stops when the UI exits and the UI stops
// when the link server fails.
package workers

import "context"

// Worker is a blocking unit of work. Run returns when the work is finished
// or ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a plain function to Worker.
type Func func(ctx context.Context) error

// Run implements Worker.
func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
