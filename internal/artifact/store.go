// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package artifact

import (
	"strings"
	"sync"

	"github.com/MKhiriev/go-cp-generator/internal/utils"
	"github.com/MKhiriev/go-cp-generator/models"
)

// BlobPathPrefix is the link server route prefix of object URLs.
const BlobPathPrefix = "/blob/"

const blobScheme = "blob:"

// MemoryStore is the in-memory [Store].
type MemoryStore struct {
	ids utils.IDGenerator

	mu      sync.RWMutex
	baseURL string
	items   map[string]models.ResultArtifact
}

func NewMemoryStore(ids utils.IDGenerator) *MemoryStore {
	return &MemoryStore{
		ids:   ids,
		items: make(map[string]models.ResultArtifact),
	}
}

// SetBaseURL sets the link server origin (e.g. "http://127.0.0.1:41234")
// used for URLs created afterwards.
func (s *MemoryStore) SetBaseURL(baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = strings.TrimRight(baseURL, "/")
}

func (s *MemoryStore) CreateObjectURL(bundle models.GeneratedBundle, preview *models.BundlePreview) models.ResultArtifact {
	id := s.ids.Generate()

	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.ResultArtifact{
		ID:        id,
		ObjectURL: s.objectURL(id),
		Bundle:    bundle,
		Preview:   preview,
	}
	s.items[id] = a

	return a
}

func (s *MemoryStore) Resolve(ref string) (models.ResultArtifact, bool) {
	id := idFromURL(ref)

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.items[id]
	return a, ok
}

func (s *MemoryStore) Revoke(objectURL string) bool {
	id := idFromURL(objectURL)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func (s *MemoryStore) RevokeAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	s.items = make(map[string]models.ResultArtifact)
	return n
}

// Len returns the number of live object URLs.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// caller holds s.mu
func (s *MemoryStore) objectURL(id string) string {
	if s.baseURL == "" {
		return blobScheme + id
	}
	return s.baseURL + BlobPathPrefix + id
}

func idFromURL(objectURL string) string {
	if rest, ok := strings.CutPrefix(objectURL, blobScheme); ok {
		return rest
	}
	if i := strings.LastIndex(objectURL, BlobPathPrefix); i >= 0 {
		return objectURL[i+len(BlobPathPrefix):]
	}
	return objectURL
}
