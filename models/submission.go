// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"path/filepath"
)

// Multipart field names expected by the generator endpoint.
const (
	FieldRecap      = "recap"
	FieldBaseCP     = "base_cp"
	FieldNegotiated = "negotiated"
	FieldFilename   = "filename"
)

// DefaultFilename is sent in the filename field when the user leaves it empty.
const DefaultFilename = "Final_CP.docx"

// FileFields lists the file controls of the form in the order they are
// appended to the multipart payload.
var FileFields = []string{FieldRecap, FieldBaseCP, FieldNegotiated}

// FormFile references one selected file. Either Path or Reader is set; when
// Reader is set, Name is used as the multipart file name.
type FormFile struct {
	// Field is the multipart part name (recap, base_cp, negotiated).
	Field string
	// Name is the file name reported to the server.
	Name string
	// Path is a local file path. Ignored when Reader is not nil.
	Path string
	// Reader supplies the file content directly.
	Reader io.Reader
}

// FileName returns the name sent in the part's Content-Disposition header.
func (f FormFile) FileName() string {
	if f.Name != "" {
		return f.Name
	}
	if f.Path != "" {
		return filepath.Base(f.Path)
	}
	return f.Field
}

// FormSubmission is the ephemeral value created when the user submits the
// form. It is discarded once the request completes.
type FormSubmission struct {
	Recap      FormFile
	BaseCP     FormFile
	Negotiated FormFile
	// Filename is the requested name of the generated document. Empty means
	// DefaultFilename.
	Filename string
}

// ResolvedFilename returns Filename or DefaultFilename when it is empty.
func (s FormSubmission) ResolvedFilename() string {
	if s.Filename == "" {
		return DefaultFilename
	}
	return s.Filename
}

// Files returns the three file references with their Field set.
func (s FormSubmission) Files() []FormFile {
	files := []FormFile{s.Recap, s.BaseCP, s.Negotiated}
	for i := range files {
		files[i].Field = FileFields[i]
	}
	return files
}
