// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler     = errors.New("link server: no handler given")
	errEmptyAddress  = errors.New("link server: empty listen address")
	errAlreadyServed = errors.New("link server: already running")
)
