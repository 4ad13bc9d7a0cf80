// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrMissingDependency is returned when a service is constructed without
	// one of its collaborators.
	ErrMissingDependency = errors.New("missing service dependency")
)
