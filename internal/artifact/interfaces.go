// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package artifact

import "github.com/MKhiriev/go-cp-generator/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/artifact_store_mock.go -package=mock

// Store registers bundles under object URLs. Implementations must be safe
// for concurrent use.
type Store interface {
	// CreateObjectURL registers bundle with its preview (nil when none) and
	// returns the artifact with its freshly assigned ID and ObjectURL.
	CreateObjectURL(bundle models.GeneratedBundle, preview *models.BundlePreview) models.ResultArtifact

	// Resolve returns the artifact addressed by ref, an object URL or a
	// bare id.
	Resolve(ref string) (models.ResultArtifact, bool)

	// Revoke releases the artifact addressed by objectURL (or its bare id).
	// It reports whether something was released.
	Revoke(objectURL string) bool

	// RevokeAll releases every artifact and returns how many were held.
	RevokeAll() int
}
