// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-cp-generator/internal/config"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpGeneratorAdapter pointed at the test server.
func newTestAdapter(t *testing.T, generateURL string) *httpGeneratorAdapter {
	t.Helper()
	a, err := NewHTTPGeneratorAdapter(config.ClientAdapter{GenerateURL: generateURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpGeneratorAdapter)
}

func testSubmission(filename string) models.FormSubmission {
	return models.FormSubmission{
		Recap:      models.FormFile{Name: "recap.txt", Reader: strings.NewReader("Vessel: MV Test")},
		BaseCP:     models.FormFile{Name: "base.docx", Reader: strings.NewReader("PK-docx-bytes")},
		Negotiated: models.FormFile{Name: "neg.txt", Reader: strings.NewReader("1. Clause one")},
		Filename:   filename,
	}
}

type capturedForm struct {
	files  map[string]string
	names  map[string]string
	values map[string][]string
}

func captureForm(t *testing.T, r *http.Request) capturedForm {
	t.Helper()
	require.NoError(t, r.ParseMultipartForm(1<<20))

	got := capturedForm{files: map[string]string{}, names: map[string]string{}, values: r.MultipartForm.Value}
	for field, headers := range r.MultipartForm.File {
		require.Len(t, headers, 1, field)
		f, err := headers[0].Open()
		require.NoError(t, err)
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		_ = f.Close()
		got.files[field] = string(b)
		got.names[field] = headers[0].Filename
	}
	return got
}

// ── resolveURLs ─────────────────────────────────────────────────────────────

func TestResolveURLs(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHealth string
		wantErr    bool
	}{
		{name: "default", raw: "http://localhost:8000/api/generate", wantHealth: "http://localhost:8000/api/health"},
		{name: "trailing slash", raw: "http://localhost:8000/api/generate/", wantHealth: "http://localhost:8000/api/health"},
		{name: "with query", raw: "http://h:1/v2/generate?x=1", wantHealth: "http://h:1/v2/health"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no scheme", raw: "localhost:8000/api/generate", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, health, err := resolveURLs(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHealth, health)
		})
	}
}

// ── Generate ────────────────────────────────────────────────────────────────

func TestGenerate_SendsFourPartsOnce(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		form := captureForm(t, r)
		assert.Equal(t, "Vessel: MV Test", form.files[models.FieldRecap])
		assert.Equal(t, "PK-docx-bytes", form.files[models.FieldBaseCP])
		assert.Equal(t, "1. Clause one", form.files[models.FieldNegotiated])
		assert.Equal(t, "base.docx", form.names[models.FieldBaseCP])
		assert.Equal(t, []string{"Custom.docx"}, form.values[models.FieldFilename])

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="cp_bundle.zip"`)
		_, _ = w.Write([]byte("zip-bytes"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/api/generate")
	bundle, err := a.Generate(context.Background(), testSubmission("Custom.docx"))

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []byte("zip-bytes"), bundle.Data)
	assert.Equal(t, "application/zip", bundle.ContentType)
	assert.Equal(t, "cp_bundle.zip", bundle.Name)
}

func TestGenerate_EmptyFilenameDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		form := captureForm(t, r)
		assert.Equal(t, []string{models.DefaultFilename}, form.values[models.FieldFilename])
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/api/generate")
	bundle, err := a.Generate(context.Background(), testSubmission(""))

	require.NoError(t, err)
	assert.Equal(t, models.DefaultBundleName, bundle.Name)
}

func TestGenerate_FilesFromDisk(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	sub := models.FormSubmission{
		Recap:      models.FormFile{Path: write("recap.txt", "r")},
		BaseCP:     models.FormFile{Path: write("base_cp.docx", "b")},
		Negotiated: models.FormFile{Path: write("negotiated.txt", "n")},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		form := captureForm(t, r)
		assert.Equal(t, "r", form.files[models.FieldRecap])
		assert.Equal(t, "negotiated.txt", form.names[models.FieldNegotiated])
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL+"/api/generate").Generate(context.Background(), sub)
	require.NoError(t, err)
}

func TestGenerate_MissingFile(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	sub := testSubmission("")
	sub.BaseCP = models.FormFile{Path: filepath.Join(t.TempDir(), "missing.docx")}

	_, err := newTestAdapter(t, srv.URL+"/api/generate").Generate(context.Background(), sub)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
	assert.Zero(t, calls.Load())
}

func TestGenerate_ServerErrorText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server error"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL+"/api/generate").Generate(context.Background(), testSubmission(""))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, "server error", err.Error())

	var reqErr *RequestFailedError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
}

func TestGenerate_ServerErrorEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL+"/api/generate").Generate(context.Background(), testSubmission(""))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, FallbackFailureMessage, err.Error())
}

func TestGenerate_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL + "/api/generate"
	srv.Close()

	_, err := newTestAdapter(t, url).Generate(context.Background(), testSubmission(""))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrRequestFailed)
	assert.NotEmpty(t, err.Error())
}

func TestGenerate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	a, err := NewHTTPGeneratorAdapter(config.ClientAdapter{
		GenerateURL:    srv.URL + "/api/generate",
		RequestTimeout: 20 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Generate(context.Background(), testSubmission(""))
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	status, err := newTestAdapter(t, srv.URL+"/api/generate").Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", status)
}

func TestHealth_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("starting up"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL+"/api/generate").Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, "starting up", err.Error())
}

func TestNewHTTPGeneratorAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPGeneratorAdapter(config.ClientAdapter{GenerateURL: ""}, logger.Nop())
	assert.Error(t, err)
}
