// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func parsedFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{GenerateURL: "http://gen:9000/api/generate"}},
		&StructuredConfig{App: App{DownloadDir: "/tmp/out"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://gen:9000/api/generate", cfg.Adapter.GenerateURL)
	assert.Equal(t, "/tmp/out", cfg.App.DownloadDir)
	assert.Equal(t, DefaultLinkServerAddress, cfg.LinkServer.Address)
}

// ── withFlags / withFile ──────────────────────────────────────────────────────

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithFile_NotSpecified(t *testing.T) {
	b := newConfigBuilder().withDefaults().withFile()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/does/not/exist.json"})

	b.withFile()
	require.Error(t, b.err)

	_, err := b.build()
	require.Error(t, err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultGenerateURL, cfg.Adapter.GenerateURL)
	assert.Equal(t, DefaultLinkServerAddress, cfg.LinkServer.Address)
	assert.Equal(t, DefaultDownloadDir, cfg.App.DownloadDir)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestGetStructuredConfig_Priority(t *testing.T) {
	t.Setenv("CPGEN_ADAPTER_GENERATE_URL", "http://env:1/api/generate")
	t.Setenv("CPGEN_APP_DOWNLOAD_DIR", "/from/env")

	p := writeTempConfig(t, "cfg.json", `{"app": {"download_dir": "/from/file"}}`)
	flags := parsedFlags(t, "-u", "http://flag:2/api/generate", "-c", p)

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "http://flag:2/api/generate", cfg.Adapter.GenerateURL)
	assert.Equal(t, "/from/file", cfg.App.DownloadDir)
}

func TestGetStructuredConfig_TOMLFile(t *testing.T) {
	p := writeTempConfig(t, "cfg.toml", `
[adapter]
generate_url = "http://toml:8000/api/generate"
request_timeout = "45s"

[link_server]
address = "127.0.0.1:8181"
`)
	t.Setenv("CPGEN_CONFIG", p)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://toml:8000/api/generate", cfg.Adapter.GenerateURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "127.0.0.1:8181", cfg.LinkServer.Address)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Success(t *testing.T) {
	flags := parsedFlags(t, "--request-timeout", "2m", "--link-address", "localhost:0")

	cfg, err := GetClientConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, DefaultGenerateURL, cfg.Adapter.GenerateURL)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:0", cfg.LinkServer.Address)
}

func TestGetClientConfig_InvalidURL(t *testing.T) {
	flags := parsedFlags(t, "-u", "not a url")

	_, err := GetClientConfig(flags)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
