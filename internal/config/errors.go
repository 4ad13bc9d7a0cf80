// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid generator endpoint settings
	// (for example, a URL without scheme or host, or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLinkServerConfigs indicates an unusable link server address.
	ErrInvalidLinkServerConfigs = errors.New("invalid link server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty download directory).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
