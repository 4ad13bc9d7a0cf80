// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DownloadDir is where bundles are saved on download.
	DownloadDir string
	// Version is the configured application version, if any.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// GenerateURL is the absolute URL of the generate endpoint.
	GenerateURL string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientLinkServer holds settings of the local object URL server.
type ClientLinkServer struct {
	// Address is the listen address in host:port form.
	Address string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the generator endpoint and timeout.
	Adapter ClientAdapter
	// LinkServer contains the object URL server settings.
	LinkServer ClientLinkServer
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DownloadDir: cfg.App.DownloadDir,
			Version:     cfg.App.Version,
		},
		Adapter: ClientAdapter{
			GenerateURL:    cfg.Adapter.GenerateURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LinkServer: ClientLinkServer{
			Address: cfg.LinkServer.Address,
		},
	}

	return clientCfg, clientCfg.validate()
}
