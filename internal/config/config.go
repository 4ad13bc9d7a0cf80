// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other source is merged.
const (
	DefaultGenerateURL       = "http://localhost:8000/api/generate"
	DefaultLinkServerAddress = "127.0.0.1:0"
	DefaultDownloadDir       = "."
)

// StructuredConfig is the top-level configuration container for the
// cp-generator client. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the download directory
	// and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds the generator endpoint and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// LinkServer holds settings of the local server that resolves object
	// URLs of generated bundles.
	LinkServer LinkServer `envPrefix:"LINK_SERVER_"`

	// ConfigFilePath is the optional path to a JSON or TOML configuration
	// file. The format is chosen by extension (".toml" for TOML, JSON
	// otherwise). Populated via the CONFIG environment variable or the
	// -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DownloadDir is the directory where downloaded bundles are written.
	// Env: APP_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration of the generator endpoint.
type Adapter struct {
	// GenerateURL is the absolute URL of the generate endpoint
	// (e.g. "http://localhost:8000/api/generate").
	// Env: ADAPTER_GENERATE_URL
	GenerateURL string `env:"GENERATE_URL"`

	// RequestTimeout bounds a single outbound request. Zero means no
	// timeout; the request runs to completion or failure.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LinkServer holds the listen address of the local object URL server.
type LinkServer struct {
	// Address is the TCP address in "host:port" form. Port 0 picks a free
	// port.
	// Env: LINK_SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DownloadDir: DefaultDownloadDir,
		},
		Adapter: Adapter{
			GenerateURL: DefaultGenerateURL,
		},
		LinkServer: LinkServer{
			Address: DefaultLinkServerAddress,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON/TOML file (path resolved from sources 1 and 2)
//
// flags may be nil when no command line is involved (e.g. in tests).
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
