// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultBundleName is used when the generator response carries no
// Content-Disposition file name.
const DefaultBundleName = "cp_bundle.zip"

// ReadyMessage is the static status text set in the report area after a
// successful submission.
const ReadyMessage = `Bundle ready. Click "Download CP Bundle".`

// GeneratedBundle is the raw successful response of the generator endpoint.
type GeneratedBundle struct {
	// Data is the opaque response body.
	Data []byte
	// ContentType is the response Content-Type, if any.
	ContentType string
	// Name is the attachment file name from Content-Disposition, or
	// DefaultBundleName.
	Name string
}

// ResultArtifact is a generated bundle registered under an object URL.
// The URL stays resolvable until it is revoked or the process exits.
type ResultArtifact struct {
	ID        string
	ObjectURL string
	Bundle    GeneratedBundle
	// Preview is a best-effort look inside the bundle; nil when the bundle
	// could not be read as an archive.
	Preview *BundlePreview
}

// Size returns the bundle size in bytes.
func (a ResultArtifact) Size() int {
	return len(a.Bundle.Data)
}
