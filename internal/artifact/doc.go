// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package artifact keeps generated bundles in memory and addresses them by
// object URLs, the way a browser addresses in-memory blobs.
//
// An object URL has the form "{base}/blob/{id}" once the link server has
// bound its address, or "blob:{id}" before that. URLs stay resolvable until
// they are revoked; nothing in the submit path revokes them, so every
// successful submission keeps its bundle in memory until [Store.RevokeAll]
// runs at shutdown.
package artifact
